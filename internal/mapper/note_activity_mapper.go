package mapper

import (
	"notetaking-be/internal/entity"
	"notetaking-be/internal/model"
)

type NoteActivityMapper struct{}

func NewNoteActivityMapper() *NoteActivityMapper {
	return &NoteActivityMapper{}
}

func (m *NoteActivityMapper) ToEntity(a *model.NoteActivity) *entity.NoteActivity {
	if a == nil {
		return nil
	}
	return &entity.NoteActivity{
		Id:        a.Id,
		NoteId:    a.NoteId,
		UserId:    a.UserId,
		Action:    entity.NoteAction(a.Action),
		Slug:      a.Slug,
		CreatedAt: a.CreatedAt,
	}
}

func (m *NoteActivityMapper) ToModel(a *entity.NoteActivity) *model.NoteActivity {
	if a == nil {
		return nil
	}
	return &model.NoteActivity{
		Id:        a.Id,
		NoteId:    a.NoteId,
		UserId:    a.UserId,
		Action:    string(a.Action),
		Slug:      a.Slug,
		CreatedAt: a.CreatedAt,
	}
}

func (m *NoteActivityMapper) ToEntities(items []*model.NoteActivity) []*entity.NoteActivity {
	entities := make([]*entity.NoteActivity, len(items))
	for i, a := range items {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
