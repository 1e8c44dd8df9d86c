package validate

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie_catalog/constants"
	"movie_catalog/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, app *fiber.App, method, path, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestGetById(t *testing.T) {
	var got uint
	app := fiber.New()
	app.Get("/movies/:movieId", GetById("movieId"), func(c *fiber.Ctx) error {
		got = c.Locals(constants.LOCAL_ID).(uint)
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/movies/12", ""))
	assert.Equal(t, uint(12), got)
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodGet, "/movies/twelve", ""))
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodGet, "/movies/0", ""))
}

func TestCreateBody(t *testing.T) {
	var got model.FranchiseCreateDTO
	app := fiber.New()
	app.Post("/franchises", CreateFranchise(), func(c *fiber.Ctx) error {
		got = c.Locals(constants.LOCAL_CREATE_INPUT).(model.FranchiseCreateDTO)
		return c.SendStatus(fiber.StatusCreated)
	})

	assert.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/franchises", `{"name":"A24","description":"indie"}`))
	assert.Equal(t, "A24", got.Name)
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPost, "/franchises", `{"description":"indie"}`))
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPost, "/franchises", `{"name":"`+string(bytes.Repeat([]byte("x"), 51))+`"}`))
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPost, "/franchises", `not json`))
}

func TestUpdateBody(t *testing.T) {
	var got model.MovieUpdateDTO
	app := fiber.New()
	app.Put("/movies/:movieId", UpdateMovie("movieId"), func(c *fiber.Ctx) error {
		got = c.Locals(constants.LOCAL_UPDATE_INPUT).(model.MovieUpdateDTO)
		return c.SendStatus(fiber.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, call(t, app, http.MethodPut, "/movies/4", `{"id":4,"movieTitle":"Heat","releaseYear":1995}`))
	assert.Equal(t, "Heat", got.MovieTitle)
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPut, "/movies/4", `{"id":5,"movieTitle":"Heat"}`))
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPut, "/movies/4", `{"movieTitle":"Heat"}`))
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPut, "/movies/4", `{"id":4,"movieTitle":""}`))
}

func TestAssignIds(t *testing.T) {
	var got model.ArrayId
	app := fiber.New()
	app.Put("/movies/:movieId/characters", AssignIds("movieId"), func(c *fiber.Ctx) error {
		got = c.Locals(constants.LOCAL_ASSIGN_INPUT).(model.ArrayId)
		return c.SendStatus(fiber.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, call(t, app, http.MethodPut, "/movies/1/characters", `[3, 1]`))
	assert.Equal(t, model.ArrayId{3, 1}, got)
	assert.Equal(t, http.StatusNoContent, call(t, app, http.MethodPut, "/movies/1/characters", `[]`))
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPut, "/movies/1/characters", `null`))
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPut, "/movies/1/characters", `[-1]`))
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPut, "/movies/1/characters", `[0]`))
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPut, "/movies/x/characters", `[1]`))
}
