package model

type Movie struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	MovieTitle  string      `gorm:"type:varchar(100);not null" json:"movieTitle"`
	Genre       string      `gorm:"type:varchar(255)" json:"genre"`
	ReleaseYear int         `json:"releaseYear"`
	Director    string      `gorm:"type:varchar(50)" json:"director"`
	Picture     string      `gorm:"type:varchar(255)" json:"picture"`
	Trailer     string      `gorm:"type:varchar(255)" json:"trailer"`
	FranchiseID *uint       `gorm:"index" json:"franchiseId"`
	Characters  []Character `gorm:"many2many:character_movie;joinForeignKey:MoviesID;joinReferences:CharactersID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"characters"`
}

// MovieCreateDTO carries no id and no relations; the store assigns the id.
type MovieCreateDTO struct {
	MovieTitle  string `json:"movieTitle" validate:"required,notblank,max=100"`
	Genre       string `json:"genre" validate:"omitempty,max=255"`
	ReleaseYear int    `json:"releaseYear" validate:"omitempty,min=1800,max=3000"`
	Director    string `json:"director" validate:"omitempty,max=50"`
	Picture     string `json:"picture" validate:"omitempty,max=255"`
	Trailer     string `json:"trailer" validate:"omitempty,max=255"`
}

// MovieUpdateDTO is a full replacement of the scalar fields.
type MovieUpdateDTO struct {
	ID          uint   `json:"id"`
	MovieTitle  string `json:"movieTitle" validate:"required,notblank,max=100"`
	Genre       string `json:"genre" validate:"omitempty,max=255"`
	ReleaseYear int    `json:"releaseYear" validate:"omitempty,min=1800,max=3000"`
	Director    string `json:"director" validate:"omitempty,max=50"`
	Picture     string `json:"picture" validate:"omitempty,max=255"`
	Trailer     string `json:"trailer" validate:"omitempty,max=255"`
}

type MovieReadDTO struct {
	ID          uint   `json:"id"`
	MovieTitle  string `json:"movieTitle"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"releaseYear"`
	Director    string `json:"director"`
	Picture     string `json:"picture"`
	Trailer     string `json:"trailer"`
	FranchiseID *uint  `json:"franchiseId"`
	Characters  []uint `json:"characters" copier:"-"`
}

// MovieCharacterReadDTO is a character as listed under a movie or franchise.
type MovieCharacterReadDTO struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Alias    string `json:"alias"`
	Gender   string `json:"gender"`
	Picture  string `json:"picture"`
}
