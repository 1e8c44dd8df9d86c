package repository

import (
	"fmt"

	"movie_catalog/apperror"
	"movie_catalog/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const movieKind = "movie"

// scalar columns replaced by a movie update; the franchise link is managed separately
var movieUpdateFields = []string{"MovieTitle", "Genre", "ReleaseYear", "Director", "Picture", "Trailer"}

type MovieRepository struct {
	db *gorm.DB
}

// List returns every movie with its characters, ordered by id
func (r *MovieRepository) List() ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.Preload("Characters", byID).Scopes(byID).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// Get returns one movie with its characters
func (r *MovieRepository) Get(id uint) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.Preload("Characters", byID).First(&movie, id).Error; err != nil {
		return nil, notFoundOr(err, movieKind, id)
	}
	return &movie, nil
}

func (r *MovieRepository) Exists(id uint) (bool, error) {
	return exists(r.db, &model.Movie{}, id)
}

// ListByFranchise returns the movies of a franchise with their characters
func (r *MovieRepository) ListByFranchise(franchiseID uint) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Preload("Characters", byID).
		Where("franchise_id = ?", franchiseID).
		Scopes(byID).
		Find(&movies).Error
	if err != nil {
		return nil, fmt.Errorf("list movies of franchise %d: %w", franchiseID, err)
	}
	return movies, nil
}

// FindByIDs loads the movies with the given ids. A missing id is reported as not found.
func (r *MovieRepository) FindByIDs(ids []uint) ([]model.Movie, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []model.Movie{}, nil
	}
	var movies []model.Movie
	if err := r.db.Where("id IN ?", ids).Scopes(byID).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	found := make(map[uint]struct{}, len(movies))
	for _, m := range movies {
		found[m.ID] = struct{}{}
	}
	if id, ok := firstMissing(ids, found); ok {
		return nil, apperror.NotFound("movie %d does not exist", id)
	}
	return movies, nil
}

func (r *MovieRepository) Create(movie *model.Movie) error {
	if err := r.db.Omit(clause.Associations).Create(movie).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

// Update overwrites the scalar fields of an existing movie
func (r *MovieRepository) Update(movie *model.Movie) error {
	result := r.db.Model(&model.Movie{ID: movie.ID}).
		Select(movieUpdateFields).
		Updates(movie)
	return checkUpdated(r.db, result, &model.Movie{}, movieKind, movie.ID)
}

// AppendCharacters adds characters to a movie. Pairs already present are kept once.
func (r *MovieRepository) AppendCharacters(movie *model.Movie, characters []model.Character) error {
	if len(characters) == 0 {
		return nil
	}
	if err := r.db.Model(movie).Association("Characters").Append(&characters); err != nil {
		return fmt.Errorf("append characters to movie %d: %w", movie.ID, err)
	}
	return nil
}

// AssignToFranchise points every given movie at franchiseID, replacing any previous franchise
func (r *MovieRepository) AssignToFranchise(franchiseID uint, movieIDs []uint) error {
	if len(movieIDs) == 0 {
		return nil
	}
	err := r.db.Model(&model.Movie{}).
		Where("id IN ?", uniqueIDs(movieIDs)).
		Update("franchise_id", franchiseID).Error
	if err != nil {
		return fmt.Errorf("assign movies to franchise %d: %w", franchiseID, err)
	}
	return nil
}

// Delete removes a movie together with its character_movie rows
func (r *MovieRepository) Delete(id uint) error {
	movie := model.Movie{ID: id}
	ok, err := r.Exists(id)
	if err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	if !ok {
		return apperror.NotFound("movie %d not found", id)
	}
	if err := r.db.Model(&movie).Association("Characters").Clear(); err != nil {
		return fmt.Errorf("delete cast of movie %d: %w", id, err)
	}
	if err := r.db.Delete(&movie).Error; err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	return nil
}
