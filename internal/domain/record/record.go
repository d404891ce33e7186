// Package record models rows of module backing tables whose shape is only
// known at runtime.
package record

import (
	"sort"

	"modcms/internal/shared/constants"
)

// Record is one row of a module table keyed by column name.
type Record map[string]any

// ID returns the row identifier, or nil if the record has none.
func (r Record) ID() any {
	return r[constants.ColumnID]
}

// Clone returns a shallow copy.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ColumnDescriptor describes one live column of a backing table.
type ColumnDescriptor struct {
	Name string
	// Kind is the database type name as reported by the driver.
	Kind string
}

// WritableSet is the immutable set of columns callers may write for one table.
type WritableSet struct {
	names []string
	index map[string]struct{}
}

// NewWritableSet derives the writable set from live columns by removing the
// reserved system columns.
func NewWritableSet(live []ColumnDescriptor) WritableSet {
	ws := WritableSet{index: make(map[string]struct{}, len(live))}
	for _, c := range live {
		if constants.IsReservedColumn(c.Name) {
			continue
		}
		if _, dup := ws.index[c.Name]; dup {
			continue
		}
		ws.index[c.Name] = struct{}{}
		ws.names = append(ws.names, c.Name)
	}
	sort.Strings(ws.names)
	return ws
}

// Contains reports whether column may be written.
func (w WritableSet) Contains(column string) bool {
	_, ok := w.index[column]
	return ok
}

// Names returns the writable columns sorted by name.
func (w WritableSet) Names() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

func (w WritableSet) Len() int {
	return len(w.names)
}

// Filter keeps only the attributes whose keys are writable.
func (w WritableSet) Filter(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if w.Contains(k) {
			out[k] = v
		}
	}
	return out
}

// HasColumn reports whether live contains a column named name.
func HasColumn(live []ColumnDescriptor, name string) bool {
	for _, c := range live {
		if c.Name == name {
			return true
		}
	}
	return false
}
