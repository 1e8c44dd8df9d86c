package repository_test

import (
	"context"
	"errors"
	"testing"

	"movie_catalog/apperror"
	"movie_catalog/database"
	"movie_catalog/model"
	"movie_catalog/repository"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RepositoryTestSuite struct {
	suite.Suite
	db  *gorm.DB
	uow *repository.UnitOfWork
	ctx context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.OpenTest(s.T(), true)
	s.uow = repository.NewUnitOfWork(s.db)
}

func (s *RepositoryTestSuite) do(fn func(r *repository.Repositories) error) error {
	return s.uow.Do(s.ctx, fn)
}

func (s *RepositoryTestSuite) characterIDsOf(movieID uint) []uint {
	var ids []uint
	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		movie, err := r.Movies.Get(movieID)
		if err != nil {
			return err
		}
		for _, c := range movie.Characters {
			ids = append(ids, c.ID)
		}
		return nil
	}))
	return ids
}

func (s *RepositoryTestSuite) TestListMoviesPreloadsCharacters() {
	var movies []model.Movie
	s.Require().NoError(s.do(func(r *repository.Repositories) (err error) {
		movies, err = r.Movies.List()
		return err
	}))

	s.Require().Len(movies, 3)
	s.Equal("Seven", movies[0].MovieTitle)
	s.Len(movies[0].Characters, 2)
	s.Equal(uint(3), movies[0].Characters[0].ID)
}

func (s *RepositoryTestSuite) TestGetMissingIsNotFound() {
	err := s.do(func(r *repository.Repositories) error {
		_, err := r.Movies.Get(99)
		return err
	})
	s.True(apperror.IsNotFound(err))

	err = s.do(func(r *repository.Repositories) error {
		_, err := r.Characters.Get(99)
		return err
	})
	s.True(apperror.IsNotFound(err))

	err = s.do(func(r *repository.Repositories) error {
		_, err := r.Franchises.Get(99)
		return err
	})
	s.True(apperror.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestCreateAssignsID() {
	movie := model.Movie{MovieTitle: "Heat", ReleaseYear: 1995}
	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		return r.Movies.Create(&movie)
	}))
	s.Equal(uint(4), movie.ID)
}

func (s *RepositoryTestSuite) TestUpdateKeepsFranchiseAndCast() {
	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		return r.Movies.Update(&model.Movie{ID: 1, MovieTitle: "Se7en", ReleaseYear: 1995})
	}))

	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		movie, err := r.Movies.Get(1)
		if err != nil {
			return err
		}
		s.Equal("Se7en", movie.MovieTitle)
		s.Empty(movie.Director)
		s.Require().NotNil(movie.FranchiseID)
		s.Equal(uint(1), *movie.FranchiseID)
		s.Len(movie.Characters, 2)
		return nil
	}))
}

func (s *RepositoryTestSuite) TestUpdateVanishedRowIsNotFound() {
	err := s.do(func(r *repository.Repositories) error {
		if err := r.Movies.Delete(2); err != nil {
			return err
		}
		return r.Movies.Update(&model.Movie{ID: 2, MovieTitle: "Iron Man"})
	})
	s.True(apperror.IsNotFound(err))

	// the failed unit of work rolled back the delete
	s.Equal([]uint{2}, s.characterIDsOf(2))
}

func (s *RepositoryTestSuite) TestFindByIDsReportsFirstMissing() {
	err := s.do(func(r *repository.Repositories) error {
		_, err := r.Characters.FindByIDs([]uint{1, 42, 43})
		return err
	})
	s.True(apperror.IsNotFound(err))
	s.ErrorContains(err, "character 42 does not exist")

	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		chars, err := r.Characters.FindByIDs([]uint{2, 1, 2})
		s.Len(chars, 2)
		return err
	}))
}

func (s *RepositoryTestSuite) TestAppendCharactersIsIdempotent() {
	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		movie, err := r.Movies.Get(2)
		if err != nil {
			return err
		}
		chars, err := r.Characters.FindByIDs([]uint{1, 2})
		if err != nil {
			return err
		}
		return r.Movies.AppendCharacters(movie, chars)
	}))

	s.Equal([]uint{1, 2}, s.characterIDsOf(2))
}

func (s *RepositoryTestSuite) TestDeleteMovieRemovesJunctionRows() {
	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		return r.Movies.Delete(1)
	}))

	var count int64
	s.Require().NoError(s.db.Table("character_movie").Where("movies_id = ?", 1).Count(&count).Error)
	s.Zero(count)

	err := s.do(func(r *repository.Repositories) error {
		return r.Movies.Delete(1)
	})
	s.True(apperror.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestStoreLevelDeleteCascadesToJunction() {
	s.Require().NoError(s.db.Exec("DELETE FROM movies WHERE id = ?", 1).Error)

	var count int64
	s.Require().NoError(s.db.Table("character_movie").Where("movies_id = ?", 1).Count(&count).Error)
	s.Zero(count)

	s.Require().NoError(s.db.Exec("DELETE FROM characters WHERE id = ?", 2).Error)
	s.Require().NoError(s.db.Table("character_movie").Where("characters_id = ?", 2).Count(&count).Error)
	s.Zero(count)
	s.Empty(s.characterIDsOf(2))
}

func (s *RepositoryTestSuite) TestDeleteCharacterRemovesAppearances() {
	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		return r.Characters.Delete(3)
	}))
	s.Equal([]uint{4}, s.characterIDsOf(1))
}

func (s *RepositoryTestSuite) TestDeleteFranchiseOrphansMovies() {
	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		return r.Franchises.Delete(1)
	}))

	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		movie, err := r.Movies.Get(3)
		if err != nil {
			return err
		}
		s.Nil(movie.FranchiseID)
		movies, err := r.Movies.ListByFranchise(1)
		s.Empty(movies)
		return err
	}))
}

func (s *RepositoryTestSuite) TestAssignToFranchiseReparents() {
	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		return r.Movies.AssignToFranchise(2, []uint{1, 1})
	}))

	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		franchise, err := r.Franchises.Get(2)
		if err != nil {
			return err
		}
		s.Len(franchise.Movies, 2)
		s.Equal(uint(1), franchise.Movies[0].ID)
		s.Equal(uint(2), franchise.Movies[1].ID)
		return nil
	}))
}

func (s *RepositoryTestSuite) TestUnitOfWorkRollsBackOnError() {
	boom := errors.New("boom")
	err := s.do(func(r *repository.Repositories) error {
		if err := r.Franchises.Create(&model.Franchise{Name: "A24"}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	s.Require().NoError(s.do(func(r *repository.Repositories) error {
		franchises, err := r.Franchises.List()
		s.Len(franchises, 2)
		return err
	}))
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
