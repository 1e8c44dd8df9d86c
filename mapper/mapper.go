// Package mapper converts between persisted entities and their wire DTOs.
//
// Scalar fields are copied by name. Relation collections are never nested in
// a read DTO: they are projected to the ids of the related rows, which keeps
// Movie <-> Character serialization finite.
package mapper

import (
	"fmt"

	"movie_catalog/model"

	"github.com/jinzhu/copier"
)

// copyFields copies same-named fields from src to dst. copier only fails on
// nil or non-addressable arguments, so a failure is a bug in this package.
func copyFields(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		panic(fmt.Sprintf("mapper: copy %T into %T: %v", src, dst, err))
	}
}

func MovieToReadDTO(m model.Movie) model.MovieReadDTO {
	var dto model.MovieReadDTO
	copyFields(&dto, &m)
	dto.Characters = characterIDs(m.Characters)
	return dto
}

func MoviesToReadDTO(movies []model.Movie) []model.MovieReadDTO {
	out := make([]model.MovieReadDTO, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieToReadDTO(m))
	}
	return out
}

func MovieFromCreateDTO(dto model.MovieCreateDTO) model.Movie {
	var m model.Movie
	copyFields(&m, &dto)
	return m
}

// MovieFromUpdateDTO carries the id and scalar fields only. The franchise
// link and characters are left zero.
func MovieFromUpdateDTO(dto model.MovieUpdateDTO) model.Movie {
	var m model.Movie
	copyFields(&m, &dto)
	return m
}

func CharacterToMovieCharacterDTO(c model.Character) model.MovieCharacterReadDTO {
	var dto model.MovieCharacterReadDTO
	copyFields(&dto, &c)
	return dto
}

func CharactersToMovieCharacterDTO(characters []model.Character) []model.MovieCharacterReadDTO {
	out := make([]model.MovieCharacterReadDTO, 0, len(characters))
	for _, c := range characters {
		out = append(out, CharacterToMovieCharacterDTO(c))
	}
	return out
}

func CharacterToReadDTO(c model.Character) model.CharacterReadDTO {
	var dto model.CharacterReadDTO
	copyFields(&dto, &c)
	dto.Movies = movieIDs(c.Movies)
	return dto
}

func CharactersToReadDTO(characters []model.Character) []model.CharacterReadDTO {
	out := make([]model.CharacterReadDTO, 0, len(characters))
	for _, c := range characters {
		out = append(out, CharacterToReadDTO(c))
	}
	return out
}

func CharacterFromCreateDTO(dto model.CharacterCreateDTO) model.Character {
	var c model.Character
	copyFields(&c, &dto)
	return c
}

func CharacterFromUpdateDTO(dto model.CharacterUpdateDTO) model.Character {
	var c model.Character
	copyFields(&c, &dto)
	return c
}

func FranchiseToReadDTO(f model.Franchise) model.FranchiseReadDTO {
	var dto model.FranchiseReadDTO
	copyFields(&dto, &f)
	dto.Movies = movieIDs(f.Movies)
	return dto
}

func FranchisesToReadDTO(franchises []model.Franchise) []model.FranchiseReadDTO {
	out := make([]model.FranchiseReadDTO, 0, len(franchises))
	for _, f := range franchises {
		out = append(out, FranchiseToReadDTO(f))
	}
	return out
}

func FranchiseFromCreateDTO(dto model.FranchiseCreateDTO) model.Franchise {
	var f model.Franchise
	copyFields(&f, &dto)
	return f
}

func FranchiseFromUpdateDTO(dto model.FranchiseUpdateDTO) model.Franchise {
	var f model.Franchise
	copyFields(&f, &dto)
	return f
}

func characterIDs(characters []model.Character) []uint {
	ids := make([]uint, 0, len(characters))
	for _, c := range characters {
		ids = append(ids, c.ID)
	}
	return ids
}

func movieIDs(movies []model.Movie) []uint {
	ids := make([]uint, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
	}
	return ids
}
