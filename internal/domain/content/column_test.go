package content

import (
	"errors"
	"testing"
)

func TestParseColumnType_ForeignKeyPairing(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		table   string
		column  string
		wantErr bool
	}{
		{"fk with both", "foreign-key", "media", "id", false},
		{"fk without table", "foreign-key", "", "id", true},
		{"fk without column", "foreign-key", "media", "", true},
		{"fk with neither", "foreign-key", "", "", true},
		{"text with reference", "text", "media", "id", true},
		{"number with table only", "number", "media", "", true},
		{"fk with unsafe table", "foreign-key", "media; drop", "id", true},
		{"plain boolean", "boolean", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseColumnType(tt.kind, tt.table, tt.column, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColumnType(%q, %q, %q) error = %v, wantErr %v", tt.kind, tt.table, tt.column, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidColumnSpec) {
				t.Errorf("error = %v, want InvalidColumnSpecError", err)
			}
		})
	}
}

func TestParseColumnType_UnknownKind(t *testing.T) {
	_, err := ParseColumnType("date", "", "", nil)
	if !errors.Is(err, ErrInvalidColumnSpec) {
		t.Fatalf("error = %v, want InvalidColumnSpecError", err)
	}
}

func TestOptionSetType(t *testing.T) {
	if _, err := OptionSetType(nil); !errors.Is(err, ErrInvalidColumnSpec) {
		t.Fatalf("empty values error = %v, want InvalidColumnSpecError", err)
	}

	ct, err := OptionSetType([]string{"draft", "published", "draft"})
	if err != nil {
		t.Fatalf("OptionSetType() error = %v", err)
	}
	if got := ct.Values(); len(got) != 2 {
		t.Errorf("Values() = %v, want duplicates removed", got)
	}
	if !ct.Allows("published") || ct.Allows("archived") {
		t.Error("Allows() does not match the value list")
	}
}

func TestColumnType_ForeignOnlyForForeignKey(t *testing.T) {
	for _, ct := range []ColumnType{TextType(), NumberType(), BooleanType()} {
		if _, ok := ct.Foreign(); ok {
			t.Errorf("%s column reported a foreign reference", ct.Kind())
		}
	}
	fk, err := ForeignKeyType("departments", "id")
	if err != nil {
		t.Fatalf("ForeignKeyType() error = %v", err)
	}
	ref, ok := fk.Foreign()
	if !ok || ref.Table != "departments" || ref.Column != "id" {
		t.Errorf("Foreign() = %+v, %v", ref, ok)
	}
	if fk.String() != "foreign-key(departments.id)" {
		t.Errorf("String() = %q", fk.String())
	}
}

func TestNewColumnDefinition_ReservedName(t *testing.T) {
	for _, name := range []string{"id", "created_at", "Updated_At", "deleted_at", "created_by", "updated_by"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewColumnDefinition(1, ColumnSpec{Name: name, Type: "text"})
			if !errors.Is(err, ErrDuplicateColumnName) {
				t.Errorf("error = %v, want DuplicateColumnNameError", err)
			}
		})
	}
}

func TestNewColumnDefinition_UnsafeName(t *testing.T) {
	for _, name := range []string{"", "1st", "name;drop", "with space"} {
		_, err := NewColumnDefinition(1, ColumnSpec{Name: name, Type: "text"})
		if !errors.Is(err, ErrInvalidColumnSpec) {
			t.Errorf("name %q: error = %v, want InvalidColumnSpecError", name, err)
		}
	}
}

func TestNewColumnDefinition_OptionSetFromOptions(t *testing.T) {
	def, err := NewColumnDefinition(3, ColumnSpec{
		Name:    "status",
		Type:    "option-set",
		Options: map[string]any{"values": []any{"draft", "published"}, "placeholder": "Pick one"},
	})
	if err != nil {
		t.Fatalf("NewColumnDefinition() error = %v", err)
	}
	if def.Type().Kind() != TypeOptionSet {
		t.Errorf("Kind() = %v", def.Type().Kind())
	}
	if !def.Type().Allows("draft") {
		t.Error("draft should be allowed")
	}
	if def.Options()["placeholder"] != "Pick one" {
		t.Error("UI hints should be kept")
	}
}

func TestNewColumnDefinition_Format(t *testing.T) {
	def, err := NewColumnDefinition(1, ColumnSpec{Name: "body", Type: "text", Options: map[string]any{"format": "markdown"}})
	if err != nil {
		t.Fatalf("NewColumnDefinition() error = %v", err)
	}
	if def.Format() != FormatMarkdown {
		t.Errorf("Format() = %q", def.Format())
	}

	_, err = NewColumnDefinition(1, ColumnSpec{Name: "body", Type: "text", Options: map[string]any{"format": "rtf"}})
	if !errors.Is(err, ErrInvalidColumnSpec) {
		t.Errorf("unsupported format error = %v", err)
	}
	_, err = NewColumnDefinition(1, ColumnSpec{Name: "count", Type: "number", Options: map[string]any{"format": "html"}})
	if !errors.Is(err, ErrInvalidColumnSpec) {
		t.Errorf("format on number error = %v", err)
	}
}

func TestColumnDefinition_OptionsAreCopied(t *testing.T) {
	opts := map[string]any{"localized": true}
	def, err := NewColumnDefinition(1, ColumnSpec{Name: "title", Type: "text", Options: opts})
	if err != nil {
		t.Fatalf("NewColumnDefinition() error = %v", err)
	}
	opts["localized"] = false
	if !def.IsLocalized() {
		t.Error("definition changed through the caller's map")
	}
	def.Options()["localized"] = false
	if !def.IsLocalized() {
		t.Error("definition changed through Options()")
	}
}
