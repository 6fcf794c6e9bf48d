package implementation

import (
	"context"

	"notetaking-be/internal/entity"
	"notetaking-be/internal/mapper"
	"notetaking-be/internal/model"
	"notetaking-be/internal/repository/contract"
	"notetaking-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NoteActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteActivityMapper
}

func NewNoteActivityRepository(db *gorm.DB) contract.NoteActivityRepository {
	return &NoteActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteActivityMapper(),
	}
}

func (r *NoteActivityRepositoryImpl) Create(ctx context.Context, activity *entity.NoteActivity) error {
	m := r.mapper.ToModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteActivity, error) {
	var models []*model.NoteActivity
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
