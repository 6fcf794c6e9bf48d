package unitofwork

import (
	"context"
	"errors"

	"notetaking-be/internal/repository/contract"
	"notetaking-be/internal/repository/implementation"

	"gorm.io/gorm"
)

var (
	ErrTransactionStarted = errors.New("transaction already started")
	ErrNoTransaction      = errors.New("no active transaction")
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // non-nil between Begin and Commit/Rollback
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTransactionStarted
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

// Rollback is safe to defer right after Begin: once Commit has run it
// reports ErrNoTransaction and touches nothing.
func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NoteRepository() contract.NoteRepository {
	return implementation.NewNoteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NoteActivityRepository() contract.NoteActivityRepository {
	return implementation.NewNoteActivityRepository(u.getDB())
}
