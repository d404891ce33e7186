package content

import "testing"

func TestNewModule_DefaultsTableName(t *testing.T) {
	m, err := NewModule("Team", "team-members", 2, "", true)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}
	if m.TableName() != "team_members" {
		t.Errorf("TableName() = %q, want team_members", m.TableName())
	}
	if !m.IsActive() || m.CategoryID() != 2 {
		t.Errorf("unexpected module %+v", m)
	}
}

func TestNewModule_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		modName    string
		code       string
		categoryID uint
		table      string
	}{
		{"empty name", " ", "events", 1, ""},
		{"upper-case code", "Events", "Events", 1, ""},
		{"code with slash", "Events", "events/all", 1, ""},
		{"missing category", "Events", "events", 0, ""},
		{"unsafe table", "Events", "events", 1, "events; drop table x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewModule(tt.modName, tt.code, tt.categoryID, tt.table, true); err == nil {
				t.Error("NewModule() error = nil, want error")
			}
		})
	}
}

func TestModule_RenameAndToggle(t *testing.T) {
	m := ReconstructModule(5, "Clients", "clients", 1, "clients", true, fixedTime, fixedTime)

	if err := m.Rename(""); err == nil {
		t.Error("Rename(\"\") error = nil")
	}
	if err := m.Rename("Our clients"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	m.SetActive(false)

	if m.Name() != "Our clients" || m.IsActive() {
		t.Errorf("module = %q active=%v", m.Name(), m.IsActive())
	}
	if !m.UpdatedAt().After(fixedTime) {
		t.Error("UpdatedAt() was not advanced")
	}
}

func TestIsValidCode(t *testing.T) {
	valid := []string{"events", "team-members", "faq_items", "news2"}
	invalid := []string{"", "-events", "events-", "Team", "a b", "a--b"}

	for _, c := range valid {
		if !IsValidCode(c) {
			t.Errorf("IsValidCode(%q) = false", c)
		}
	}
	for _, c := range invalid {
		if IsValidCode(c) {
			t.Errorf("IsValidCode(%q) = true", c)
		}
	}
}
