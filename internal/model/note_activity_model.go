package model

import (
	"time"

	"github.com/google/uuid"
)

type NoteActivity struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Action    string    `gorm:"type:varchar(20);not null;index"`
	Slug      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (NoteActivity) TableName() string {
	return "note_activities"
}
