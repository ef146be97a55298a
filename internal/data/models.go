package data

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateLink  = errors.New("duplicate cast link")
)

type Models struct {
	Movies MovieModel
	Actors ActorModel
	Casts  CastModel
}

func NewModels(db *gorm.DB) Models {
	return Models{
		Movies: MovieModel{
			DB: db,
		},
		Actors: ActorModel{
			DB: db,
		},
		Casts: CastModel{
			DB: db,
		},
	}
}
