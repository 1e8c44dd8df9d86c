package database

import (
	"fmt"

	"movie_catalog/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func franchiseRef(id uint) *uint {
	return &id
}

var (
	seedFranchises = []model.Franchise{
		{ID: 1, Name: "Warner Bros", Description: "Big movie company"},
		{ID: 2, Name: "Paramount Pictures", Description: "Another big movie company"},
	}
	seedMovies = []model.Movie{
		{ID: 1, MovieTitle: "Seven", Director: "David Fincher", ReleaseYear: 1995, Genre: "crime, thriller", Picture: "https://www.imageurl.com", Trailer: "https://youtube.com/someUrl", FranchiseID: franchiseRef(1)},
		{ID: 2, MovieTitle: "Iron Man", Director: "Jon Faveau", ReleaseYear: 2008, Genre: "superhero, action", Picture: "https://www.imageurl.com", Trailer: "https://youtube.com/someUrl", FranchiseID: franchiseRef(2)},
		{ID: 3, MovieTitle: "Top Gun: Maverick", Director: "Tony Scott", ReleaseYear: 2022, Genre: "action", Picture: "https://www.imageurl.com", Trailer: "https://youtube.com/someUrl", FranchiseID: franchiseRef(1)},
	}
	seedCharacters = []model.Character{
		{ID: 1, FullName: "Capt. Pete Mitchell", Alias: "Maverick", Gender: "Male"},
		{ID: 2, FullName: "Tony Stark", Alias: "Iron Man", Gender: "Male"},
		{ID: 3, FullName: "David Mills", Gender: "Male"},
		{ID: 4, FullName: "Detective William Sommerset", Gender: "Male"},
	}
	// movie id -> character ids
	seedCast = map[uint][]uint{
		1: {3, 4},
		2: {2},
		3: {1},
	}
)

// SeedData inserts the fixture catalog into an empty database. A database
// holding any catalog row is left untouched.
func SeedData(db *gorm.DB, log *zap.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		empty, err := catalogEmpty(tx)
		if err != nil {
			return err
		}
		if !empty {
			log.Info("catalog already populated, seed skipped")
			return nil
		}

		franchises := append([]model.Franchise(nil), seedFranchises...)
		if err := tx.Omit(clause.Associations).Create(&franchises).Error; err != nil {
			return fmt.Errorf("seed franchises: %w", err)
		}
		movies := append([]model.Movie(nil), seedMovies...)
		if err := tx.Omit(clause.Associations).Create(&movies).Error; err != nil {
			return fmt.Errorf("seed movies: %w", err)
		}
		characters := append([]model.Character(nil), seedCharacters...)
		if err := tx.Omit(clause.Associations).Create(&characters).Error; err != nil {
			return fmt.Errorf("seed characters: %w", err)
		}

		for _, movie := range movies {
			var cast []model.Character
			if err := tx.Where("id IN ?", seedCast[movie.ID]).Find(&cast).Error; err != nil {
				return fmt.Errorf("seed cast of movie %d: %w", movie.ID, err)
			}
			if err := tx.Model(&movie).Association("Characters").Append(&cast); err != nil {
				return fmt.Errorf("seed cast of movie %d: %w", movie.ID, err)
			}
		}

		if err := resetSequences(tx); err != nil {
			return err
		}

		log.Info("catalog seeded",
			zap.Int("franchises", len(franchises)),
			zap.Int("movies", len(movies)),
			zap.Int("characters", len(characters)),
		)
		return nil
	})
}

func catalogEmpty(tx *gorm.DB) (bool, error) {
	for _, m := range model.Entities() {
		var count int64
		if err := tx.Model(m).Count(&count).Error; err != nil {
			return false, fmt.Errorf("count %T: %w", m, err)
		}
		if count > 0 {
			return false, nil
		}
	}
	return true, nil
}

// resetSequences moves postgres identity sequences past the explicitly seeded ids.
func resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"franchises", "movies", "characters"} {
		stmt := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))", table, table)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}
	return nil
}
