package repos

import (
	"gorm.io/gorm"
)

type Filter interface {
	Apply(query *gorm.DB) *gorm.DB
}

type WhereFilter struct {
	SQL  string
	Args []any
}

func (f WhereFilter) Apply(query *gorm.DB) *gorm.DB {
	return query.Where(f.SQL, f.Args...)
}

type noopFilter struct{}

func (noopFilter) Apply(query *gorm.DB) *gorm.DB {
	return query
}

// FilterExcludeIDs skips the notes with the given ids.
func FilterExcludeIDs(ids []uint) Filter {
	// NOT IN with an empty list would exclude every row
	if len(ids) == 0 {
		return noopFilter{}
	}
	return WhereFilter{
		SQL:  "notes.id NOT IN ?",
		Args: []any{ids},
	}
}

func FilterByTitle(title string) WhereFilter {
	return WhereFilter{
		SQL:  "notes.title = ?",
		Args: []any{title},
	}
}

func RawFilter(sql string) WhereFilter {
	return WhereFilter{
		SQL: sql,
	}
}
