package handler

import (
	"movie_catalog/constants"
	"movie_catalog/mapper"
	"movie_catalog/model"
	"movie_catalog/repository"
	"movie_catalog/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) GetMovies(c *fiber.Ctx) error {
	var movies []model.Movie
	err := h.uow.Do(c.UserContext(), func(r *repository.Repositories) (err error) {
		movies, err = r.Movies.List()
		return err
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mapper.MoviesToReadDTO(movies))
}

func (h *Handler) GetMovieById(c *fiber.Ctx) error {
	id, err := inputId(c)
	if err != nil {
		return err
	}

	var movie *model.Movie
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) (err error) {
		movie, err = r.Movies.Get(id)
		return err
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mapper.MovieToReadDTO(*movie))
}

func (h *Handler) GetMovieCharacters(c *fiber.Ctx) error {
	id, err := inputId(c)
	if err != nil {
		return err
	}

	var movie *model.Movie
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) (err error) {
		movie, err = r.Movies.Get(id)
		return err
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mapper.CharactersToMovieCharacterDTO(movie.Characters))
}

func (h *Handler) CreateMovie(c *fiber.Ctx) error {
	input, err := localInput[model.MovieCreateDTO](c, constants.LOCAL_CREATE_INPUT)
	if err != nil {
		return err
	}

	movie := mapper.MovieFromCreateDTO(input)
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		return r.Movies.Create(&movie)
	})
	if err != nil {
		return err
	}

	h.log.Info("movie created", zap.Uint("id", movie.ID), zap.String("title", movie.MovieTitle))
	return utils.CreatedResponse(c, constants.LOCATION_MOVIES, movie.ID, mapper.MovieToReadDTO(movie))
}

func (h *Handler) UpdateMovie(c *fiber.Ctx) error {
	input, err := localInput[model.MovieUpdateDTO](c, constants.LOCAL_UPDATE_INPUT)
	if err != nil {
		return err
	}

	movie := mapper.MovieFromUpdateDTO(input)
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		return r.Movies.Update(&movie)
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignCharactersToMovie adds the characters in the body to the movie's cast.
// Every id is checked before anything is written.
func (h *Handler) AssignCharactersToMovie(c *fiber.Ctx) error {
	id, characterIds, err := assignIds(c)
	if err != nil {
		return err
	}

	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		movie, err := r.Movies.Get(id)
		if err != nil {
			return err
		}
		characters, err := r.Characters.FindByIDs(characterIds)
		if err != nil {
			return bodyReference(err)
		}
		return r.Movies.AppendCharacters(movie, characters)
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteMovie(c *fiber.Ctx) error {
	id, err := inputId(c)
	if err != nil {
		return err
	}

	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		return r.Movies.Delete(id)
	})
	if err != nil {
		return err
	}

	h.log.Info("movie deleted", zap.Uint("id", id))
	return c.SendStatus(fiber.StatusNoContent)
}
