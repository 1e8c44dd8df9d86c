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

func (h *Handler) GetCharacters(c *fiber.Ctx) error {
	var characters []model.Character
	err := h.uow.Do(c.UserContext(), func(r *repository.Repositories) (err error) {
		characters, err = r.Characters.List()
		return err
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mapper.CharactersToReadDTO(characters))
}

func (h *Handler) GetCharacterById(c *fiber.Ctx) error {
	id, err := inputId(c)
	if err != nil {
		return err
	}

	var character *model.Character
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) (err error) {
		character, err = r.Characters.Get(id)
		return err
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mapper.CharacterToReadDTO(*character))
}

func (h *Handler) CreateCharacter(c *fiber.Ctx) error {
	input, err := localInput[model.CharacterCreateDTO](c, constants.LOCAL_CREATE_INPUT)
	if err != nil {
		return err
	}

	character := mapper.CharacterFromCreateDTO(input)
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		return r.Characters.Create(&character)
	})
	if err != nil {
		return err
	}

	h.log.Info("character created", zap.Uint("id", character.ID), zap.String("fullName", character.FullName))
	return utils.CreatedResponse(c, constants.LOCATION_CHARACTERS, character.ID, mapper.CharacterToReadDTO(character))
}

func (h *Handler) UpdateCharacter(c *fiber.Ctx) error {
	input, err := localInput[model.CharacterUpdateDTO](c, constants.LOCAL_UPDATE_INPUT)
	if err != nil {
		return err
	}

	character := mapper.CharacterFromUpdateDTO(input)
	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		return r.Characters.Update(&character)
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteCharacter(c *fiber.Ctx) error {
	id, err := inputId(c)
	if err != nil {
		return err
	}

	err = h.uow.Do(c.UserContext(), func(r *repository.Repositories) error {
		return r.Characters.Delete(id)
	})
	if err != nil {
		return err
	}

	h.log.Info("character deleted", zap.Uint("id", id))
	return c.SendStatus(fiber.StatusNoContent)
}
