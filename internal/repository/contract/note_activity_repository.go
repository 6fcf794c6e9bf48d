package contract

import (
	"context"

	"notetaking-be/internal/entity"
	"notetaking-be/internal/repository/specification"
)

type NoteActivityRepository interface {
	Create(ctx context.Context, activity *entity.NoteActivity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteActivity, error)
}
