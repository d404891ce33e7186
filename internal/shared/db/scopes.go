package db

import (
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WhereEquals adds one quoted equality condition per filter entry. Keys are
// applied in sorted order so identical filters build identical SQL.
func WhereEquals(filters map[string]any) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		keys := make([]string, 0, len(filters))
		for k := range filters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			db = db.Where(clause.Eq{Column: clause.Column{Name: k}, Value: filters[k]})
		}
		return db
	}
}

// Paginate applies offset and limit for a 1-based page.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// OrderBy sorts by a quoted column.
func OrderBy(column string, desc bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	}
}
