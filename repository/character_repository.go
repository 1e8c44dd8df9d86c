package repository

import (
	"fmt"

	"movie_catalog/apperror"
	"movie_catalog/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const characterKind = "character"

var characterUpdateFields = []string{"FullName", "Alias", "Gender", "Picture"}

type CharacterRepository struct {
	db *gorm.DB
}

func (r *CharacterRepository) List() ([]model.Character, error) {
	var characters []model.Character
	if err := r.db.Preload("Movies", byID).Scopes(byID).Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return characters, nil
}

func (r *CharacterRepository) Get(id uint) (*model.Character, error) {
	var character model.Character
	if err := r.db.Preload("Movies", byID).First(&character, id).Error; err != nil {
		return nil, notFoundOr(err, characterKind, id)
	}
	return &character, nil
}

func (r *CharacterRepository) Exists(id uint) (bool, error) {
	return exists(r.db, &model.Character{}, id)
}

// FindByIDs loads the characters with the given ids. A missing id is reported as not found.
func (r *CharacterRepository) FindByIDs(ids []uint) ([]model.Character, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []model.Character{}, nil
	}
	var characters []model.Character
	if err := r.db.Where("id IN ?", ids).Scopes(byID).Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("find characters: %w", err)
	}
	found := make(map[uint]struct{}, len(characters))
	for _, c := range characters {
		found[c.ID] = struct{}{}
	}
	if id, ok := firstMissing(ids, found); ok {
		return nil, apperror.NotFound("character %d does not exist", id)
	}
	return characters, nil
}

func (r *CharacterRepository) Create(character *model.Character) error {
	if err := r.db.Omit(clause.Associations).Create(character).Error; err != nil {
		return fmt.Errorf("create character: %w", err)
	}
	return nil
}

func (r *CharacterRepository) Update(character *model.Character) error {
	result := r.db.Model(&model.Character{ID: character.ID}).
		Select(characterUpdateFields).
		Updates(character)
	return checkUpdated(r.db, result, &model.Character{}, characterKind, character.ID)
}

// Delete removes a character together with its character_movie rows
func (r *CharacterRepository) Delete(id uint) error {
	character := model.Character{ID: id}
	ok, err := r.Exists(id)
	if err != nil {
		return fmt.Errorf("delete character %d: %w", id, err)
	}
	if !ok {
		return apperror.NotFound("character %d not found", id)
	}
	if err := r.db.Model(&character).Association("Movies").Clear(); err != nil {
		return fmt.Errorf("delete appearances of character %d: %w", id, err)
	}
	if err := r.db.Delete(&character).Error; err != nil {
		return fmt.Errorf("delete character %d: %w", id, err)
	}
	return nil
}
