package data

import (
	"context"
	"time"

	"github.com/nhan10132020/moviecatalog/internal/validator"
	"gorm.io/gorm"
)

type Movie struct {
	ID          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`                 // assigned by the database, never reused
	Title       string `json:"title" gorm:"column:title;not null" validate:"required"`       // Movie title
	Year        Year   `json:"year" gorm:"column:year;not null" validate:"required"`         // Movie release year
	Director    string `json:"director" gorm:"column:director;not null" validate:"required"` // Movie director
	Description string `json:"description" gorm:"column:description" validate:"required"`    // Free-form synopsis
}

func (Movie) TableName() string { return "movie" }

func ValidateMovie(v *validator.Validator, movie *Movie) {
	v.Struct(movie)
}

type MovieModel struct {
	DB *gorm.DB
}

func (m MovieModel) Insert(movie *Movie) error {
	// context 3-second timeout deadline
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.DB.WithContext(ctx).Create(movie).Error
}

func (m MovieModel) GetAll() ([]Movie, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	movies := []Movie{}
	if err := m.DB.WithContext(ctx).Order("id").Find(&movies).Error; err != nil {
		return nil, err
	}

	return movies, nil
}

// Update replaces every mutable column of the row with movie.ID. A missing
// row is not an error: the statement simply affects nothing.
func (m MovieModel) Update(movie *Movie) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.DB.
		WithContext(ctx).
		Model(&Movie{}).
		Where("id = ?", movie.ID).
		Updates(map[string]interface{}{
			"title":       movie.Title,
			"year":        movie.Year,
			"director":    movie.Director,
			"description": movie.Description,
		}).Error
}

func (m MovieModel) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.DB.WithContext(ctx).Where("id = ?", id).Delete(&Movie{}).Error
}

// DeleteAll removes every movie. Cast rows pointing at them are left alone.
func (m MovieModel) DeleteAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.DB.
		WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&Movie{}).Error
}
