package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWritableSet_ExcludesReservedColumns(t *testing.T) {
	live := []ColumnDescriptor{
		{Name: "id", Kind: "INTEGER"},
		{Name: "name", Kind: "TEXT"},
		{Name: "slug", Kind: "TEXT"},
		{Name: "created_at", Kind: "DATETIME"},
		{Name: "updated_at", Kind: "DATETIME"},
		{Name: "deleted_at", Kind: "DATETIME"},
		{Name: "created_by", Kind: "INTEGER"},
		{Name: "updated_by", Kind: "INTEGER"},
	}

	ws := NewWritableSet(live)

	assert.Equal(t, []string{"name", "slug"}, ws.Names())
	for _, reserved := range []string{"id", "created_at", "updated_at", "deleted_at", "created_by", "updated_by"} {
		assert.False(t, ws.Contains(reserved), reserved)
	}
}

func TestWritableSet_Filter(t *testing.T) {
	ws := NewWritableSet([]ColumnDescriptor{{Name: "id"}, {Name: "title"}, {Name: "body"}})

	got := ws.Filter(map[string]any{"id": 9, "title": "Hello", "is_admin": true})

	assert.Equal(t, map[string]any{"title": "Hello"}, got)
}

func TestWritableSet_NamesIsACopy(t *testing.T) {
	ws := NewWritableSet([]ColumnDescriptor{{Name: "a"}, {Name: "b"}})

	names := ws.Names()
	names[0] = "zzz"

	assert.Equal(t, []string{"a", "b"}, ws.Names())
	assert.Equal(t, 2, ws.Len())
}

func TestRecord_IDAndClone(t *testing.T) {
	r := Record{"id": int64(4), "name": "Sales"}
	c := r.Clone()
	c["name"] = "Support"

	assert.Equal(t, int64(4), r.ID())
	assert.Equal(t, "Sales", r["name"])
	assert.True(t, HasColumn([]ColumnDescriptor{{Name: "name"}}, "name"))
	assert.False(t, HasColumn(nil, "name"))
}
