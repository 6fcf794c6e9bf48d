package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Text      string    `gorm:"type:text;not null"`
	Slug      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_notes_slug"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
