package implementation

import (
	"context"
	"errors"

	"notetaking-be/internal/entity"
	"notetaking-be/internal/mapper"
	"notetaking-be/internal/model"
	"notetaking-be/internal/repository/contract"
	"notetaking-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// noteEditableColumns are the columns an owner may change through the edit form.
var noteEditableColumns = []string{"title", "text", "slug", "updated_at"}

// Create inserts the note. A slug already taken by any author comes back as
// contract.ErrDuplicateKey, straight from the unique index.
func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

// Update writes the editable columns of an existing note. Moving onto a slug
// held by another note fails with contract.ErrDuplicateKey like Create does.
func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	err := r.db.WithContext(ctx).Model(m).Select(noteEditableColumns).Updates(m).Error
	if err != nil {
		return translateWriteError(err)
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, "id = ?", id).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
