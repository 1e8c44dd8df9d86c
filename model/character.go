package model

type Character struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	FullName string  `gorm:"type:varchar(50);not null" json:"fullName"`
	Alias    string  `gorm:"type:varchar(50)" json:"alias"`
	Gender   string  `gorm:"type:varchar(10)" json:"gender"`
	Picture  string  `gorm:"type:varchar(255)" json:"picture"`
	Movies   []Movie `gorm:"many2many:character_movie;joinForeignKey:CharactersID;joinReferences:MoviesID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"movies"`
}

type CharacterCreateDTO struct {
	FullName string `json:"fullName" validate:"required,notblank,max=50"`
	Alias    string `json:"alias" validate:"omitempty,max=50"`
	Gender   string `json:"gender" validate:"omitempty,max=10"`
	Picture  string `json:"picture" validate:"omitempty,max=255"`
}

type CharacterUpdateDTO struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName" validate:"required,notblank,max=50"`
	Alias    string `json:"alias" validate:"omitempty,max=50"`
	Gender   string `json:"gender" validate:"omitempty,max=10"`
	Picture  string `json:"picture" validate:"omitempty,max=255"`
}

type CharacterReadDTO struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Alias    string `json:"alias"`
	Gender   string `json:"gender"`
	Picture  string `json:"picture"`
	Movies   []uint `json:"movies" copier:"-"`
}
