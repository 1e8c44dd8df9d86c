package handler

import (
	"movie_catalog/apperror"
	"movie_catalog/constants"
	"movie_catalog/mapper"
	"movie_catalog/model"
	"movie_catalog/repository"
	"movie_catalog/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) GetFranchises(c *fiber.Ctx) error {
	var franchises []model.Franchise
	err := h.uow.Do(c.UserContext(), func(r *repository.Repositories) (err error) {
		franchises, err = r.Franchises.List()
		return err
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mapper.FranchisesToReadDTO(franchises))
}

func (h *Handler) GetFranchiseById(c *fiber.Ctx) error {
	id, err := inputId(c)
	if err != nil {
		return err
	}

	var franchise *model.Franchise
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) (err error) {
		franchise, err = r.Franchises.Get(id)
		return err
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mapper.FranchiseToReadDTO(*franchise))
}

// franchiseMovies loads the movies of an existing franchise with their characters.
func franchiseMovies(r *repository.Repositories, id uint) ([]model.Movie, error) {
	ok, err := r.Franchises.Exists(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("franchise %d not found", id)
	}
	return r.Movies.ListByFranchise(id)
}

func (h *Handler) GetFranchiseMovies(c *fiber.Ctx) error {
	id, err := inputId(c)
	if err != nil {
		return err
	}

	var movies []model.Movie
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) (err error) {
		movies, err = franchiseMovies(r, id)
		return err
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mapper.MoviesToReadDTO(movies))
}

// GetFranchiseCharacters flattens the casts of every movie in the franchise.
// A character appearing in several movies is listed once per movie.
func (h *Handler) GetFranchiseCharacters(c *fiber.Ctx) error {
	id, err := inputId(c)
	if err != nil {
		return err
	}

	var movies []model.Movie
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) (err error) {
		movies, err = franchiseMovies(r, id)
		return err
	})
	if err != nil {
		return err
	}

	var characters []model.Character
	for _, movie := range movies {
		characters = append(characters, movie.Characters...)
	}
	return c.Status(fiber.StatusOK).JSON(mapper.CharactersToMovieCharacterDTO(characters))
}

func (h *Handler) CreateFranchise(c *fiber.Ctx) error {
	input, err := localInput[model.FranchiseCreateDTO](c, constants.LOCAL_CREATE_INPUT)
	if err != nil {
		return err
	}

	franchise := mapper.FranchiseFromCreateDTO(input)
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		return r.Franchises.Create(&franchise)
	})
	if err != nil {
		return err
	}

	h.log.Info("franchise created", zap.Uint("id", franchise.ID), zap.String("name", franchise.Name))
	return utils.CreatedResponse(c, constants.LOCATION_FRANCHISES, franchise.ID, mapper.FranchiseToReadDTO(franchise))
}

func (h *Handler) UpdateFranchise(c *fiber.Ctx) error {
	input, err := localInput[model.FranchiseUpdateDTO](c, constants.LOCAL_UPDATE_INPUT)
	if err != nil {
		return err
	}

	franchise := mapper.FranchiseFromUpdateDTO(input)
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		return r.Franchises.Update(&franchise)
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignMoviesToFranchise moves the movies in the body into the franchise,
// replacing whatever franchise they had. Every id is checked before anything is written.
func (h *Handler) AssignMoviesToFranchise(c *fiber.Ctx) error {
	id, movieIds, err := assignIds(c)
	if err != nil {
		return err
	}

	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		ok, err := r.Franchises.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NotFound("franchise %d not found", id)
		}
		if _, err := r.Movies.FindByIDs(movieIds); err != nil {
			return bodyReference(err)
		}
		return r.Movies.AssignToFranchise(id, movieIds)
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteFranchise(c *fiber.Ctx) error {
	id, err := inputId(c)
	if err != nil {
		return err
	}

	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		return r.Franchises.Delete(id)
	})
	if err != nil {
		return err
	}

	h.log.Info("franchise deleted", zap.Uint("id", id))
	return c.SendStatus(fiber.StatusNoContent)
}
