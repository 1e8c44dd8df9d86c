package validate

import (
	"movie_catalog/model"

	"github.com/gofiber/fiber/v2"
)

func CreateMovie() fiber.Handler {
	return CreateBody[model.MovieCreateDTO]()
}

func UpdateMovie(key string) fiber.Handler {
	return UpdateBody(key, func(in model.MovieUpdateDTO) uint { return in.ID })
}

func CreateCharacter() fiber.Handler {
	return CreateBody[model.CharacterCreateDTO]()
}

func UpdateCharacter(key string) fiber.Handler {
	return UpdateBody(key, func(in model.CharacterUpdateDTO) uint { return in.ID })
}

func CreateFranchise() fiber.Handler {
	return CreateBody[model.FranchiseCreateDTO]()
}

func UpdateFranchise(key string) fiber.Handler {
	return UpdateBody(key, func(in model.FranchiseUpdateDTO) uint { return in.ID })
}
