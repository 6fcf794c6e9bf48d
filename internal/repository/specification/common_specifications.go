package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ExcludeID drops a single row, used when checking uniqueness against "everyone else".
type ExcludeID struct {
	ID uuid.UUID
}

func (s ExcludeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id <> ?", s.ID)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}
