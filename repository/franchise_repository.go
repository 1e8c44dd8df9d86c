package repository

import (
	"fmt"

	"movie_catalog/apperror"
	"movie_catalog/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const franchiseKind = "franchise"

var franchiseUpdateFields = []string{"Name", "Description"}

type FranchiseRepository struct {
	db *gorm.DB
}

func (r *FranchiseRepository) List() ([]model.Franchise, error) {
	var franchises []model.Franchise
	if err := r.db.Preload("Movies", byID).Scopes(byID).Find(&franchises).Error; err != nil {
		return nil, fmt.Errorf("list franchises: %w", err)
	}
	return franchises, nil
}

func (r *FranchiseRepository) Get(id uint) (*model.Franchise, error) {
	var franchise model.Franchise
	if err := r.db.Preload("Movies", byID).First(&franchise, id).Error; err != nil {
		return nil, notFoundOr(err, franchiseKind, id)
	}
	return &franchise, nil
}

func (r *FranchiseRepository) Exists(id uint) (bool, error) {
	return exists(r.db, &model.Franchise{}, id)
}

func (r *FranchiseRepository) Create(franchise *model.Franchise) error {
	if err := r.db.Omit(clause.Associations).Create(franchise).Error; err != nil {
		return fmt.Errorf("create franchise: %w", err)
	}
	return nil
}

func (r *FranchiseRepository) Update(franchise *model.Franchise) error {
	result := r.db.Model(&model.Franchise{ID: franchise.ID}).
		Select(franchiseUpdateFields).
		Updates(franchise)
	return checkUpdated(r.db, result, &model.Franchise{}, franchiseKind, franchise.ID)
}

// Delete removes a franchise. Its movies are kept with no franchise.
func (r *FranchiseRepository) Delete(id uint) error {
	ok, err := r.Exists(id)
	if err != nil {
		return fmt.Errorf("delete franchise %d: %w", id, err)
	}
	if !ok {
		return apperror.NotFound("franchise %d not found", id)
	}
	err = r.db.Model(&model.Movie{}).
		Where("franchise_id = ?", id).
		Update("franchise_id", nil).Error
	if err != nil {
		return fmt.Errorf("detach movies of franchise %d: %w", id, err)
	}
	if err := r.db.Delete(&model.Franchise{ID: id}).Error; err != nil {
		return fmt.Errorf("delete franchise %d: %w", id, err)
	}
	return nil
}
