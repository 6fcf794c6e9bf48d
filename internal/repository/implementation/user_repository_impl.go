package implementation

import (
	"context"
	"errors"

	"notetaking-be/internal/entity"
	"notetaking-be/internal/mapper"
	"notetaking-be/internal/model"
	"notetaking-be/internal/repository/contract"
	"notetaking-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
