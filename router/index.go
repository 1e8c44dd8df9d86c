package router

import (
	"movie_catalog/handler"
	"movie_catalog/middleware"
	"movie_catalog/utils"
	"movie_catalog/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New builds the fiber app with middleware and every catalog route.
func New(db *gorm.DB, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "movie-catalog",
		ErrorHandler:          utils.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	SetupRoutes(app, handler.New(db, log))
	return app
}

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api")

	movies := api.Group("/movies")
	movies.Get("/", h.GetMovies)
	movies.Get("/:movieId", validate.GetById("movieId"), h.GetMovieById)
	movies.Get("/:movieId/characters", validate.GetById("movieId"), h.GetMovieCharacters)
	movies.Post("/", validate.CreateMovie(), h.CreateMovie)
	movies.Put("/:movieId", validate.UpdateMovie("movieId"), h.UpdateMovie)
	movies.Put("/:movieId/characters", validate.AssignIds("movieId"), h.AssignCharactersToMovie)
	movies.Delete("/:movieId", validate.GetById("movieId"), h.DeleteMovie)

	characters := api.Group("/characters")
	characters.Get("/", h.GetCharacters)
	characters.Get("/:characterId", validate.GetById("characterId"), h.GetCharacterById)
	characters.Post("/", validate.CreateCharacter(), h.CreateCharacter)
	characters.Put("/:characterId", validate.UpdateCharacter("characterId"), h.UpdateCharacter)
	characters.Delete("/:characterId", validate.GetById("characterId"), h.DeleteCharacter)

	// routing is case-insensitive, /franchises/Movies/1 hits the same route
	franchises := api.Group("/franchises")
	franchises.Get("/", h.GetFranchises)
	franchises.Get("/movies/:franchiseId", validate.GetById("franchiseId"), h.GetFranchiseMovies)
	franchises.Get("/characters/:franchiseId", validate.GetById("franchiseId"), h.GetFranchiseCharacters)
	franchises.Put("/movies/:franchiseId", validate.AssignIds("franchiseId"), h.AssignMoviesToFranchise)
	franchises.Get("/:franchiseId", validate.GetById("franchiseId"), h.GetFranchiseById)
	franchises.Post("/", validate.CreateFranchise(), h.CreateFranchise)
	franchises.Put("/:franchiseId", validate.UpdateFranchise("franchiseId"), h.UpdateFranchise)
	franchises.Delete("/:franchiseId", validate.GetById("franchiseId"), h.DeleteFranchise)
}
