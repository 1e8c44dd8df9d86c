package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork runs request-scoped work inside a single database transaction.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Repositories share one transaction
type Repositories struct {
	Movies     *MovieRepository
	Characters *CharacterRepository
	Franchises *FranchiseRepository
}

func newRepositories(tx *gorm.DB) *Repositories {
	return &Repositories{
		Movies:     &MovieRepository{db: tx},
		Characters: &CharacterRepository{db: tx},
		Franchises: &FranchiseRepository{db: tx},
	}
}

// Do begins a transaction bound to ctx, passes repositories using it to fn,
// and commits when fn returns nil. Any error or panic rolls back.
func (u *UnitOfWork) Do(ctx context.Context, fn func(r *Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}
