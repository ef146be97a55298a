package data

import (
	"context"
	"errors"
	"time"

	"github.com/nhan10132020/moviecatalog/internal/validator"
	"gorm.io/gorm"
)

type Actor struct {
	ID      int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"column:name;not null" validate:"required"`
	Surname string `json:"surname" gorm:"column:surname;not null" validate:"required"`
}

func (Actor) TableName() string { return "actor" }

func ValidateActor(v *validator.Validator, actor *Actor) {
	v.Struct(actor)
}

type ActorModel struct {
	DB *gorm.DB
}

func (m ActorModel) Insert(actor *Actor) error {
	// context 3-second timeout deadline
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.DB.WithContext(ctx).Create(actor).Error
}

func (m ActorModel) Get(id int64) (*Actor, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var actor Actor
	if err := m.DB.WithContext(ctx).Where("id = ?", id).First(&actor).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &actor, nil
}

func (m ActorModel) GetAll() ([]Actor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	actors := []Actor{}
	if err := m.DB.WithContext(ctx).Order("id").Find(&actors).Error; err != nil {
		return nil, err
	}

	return actors, nil
}

// GetAllForMovie returns the actors cast in the movie through
// movie_actor_through. The movie row itself is never consulted, so an
// unknown movie yields an empty slice.
func (m ActorModel) GetAllForMovie(movieID int64) ([]Actor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	actors := []Actor{}
	if err := m.DB.
		WithContext(ctx).
		Table("actor").
		Joins("INNER JOIN movie_actor_through ON movie_actor_through.actor_id = actor.id").
		Where("movie_actor_through.movie_id = ?", movieID).
		Select("actor.id, actor.name, actor.surname").
		Order("actor.id").
		Find(&actors).Error; err != nil {

		return nil, err
	}

	return actors, nil
}

func (m ActorModel) Update(actor *Actor) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.DB.
		WithContext(ctx).
		Model(&Actor{}).
		Where("id = ?", actor.ID).
		Updates(map[string]interface{}{
			"name":    actor.Name,
			"surname": actor.Surname,
		}).Error
}

func (m ActorModel) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.DB.WithContext(ctx).Where("id = ?", id).Delete(&Actor{}).Error
}
