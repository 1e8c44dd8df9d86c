package model

type Franchise struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(50);not null" json:"name"`
	Description string  `gorm:"type:varchar(500)" json:"description"`
	Movies      []Movie `gorm:"foreignKey:FranchiseID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"movies"`
}

type FranchiseCreateDTO struct {
	Name        string `json:"name" validate:"required,notblank,max=50"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type FranchiseUpdateDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name" validate:"required,notblank,max=50"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type FranchiseReadDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Movies      []uint `json:"movies" copier:"-"`
}
