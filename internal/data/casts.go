package data

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Cast is one row of the movie/actor join table. Rows are only ever written
// out-of-band; the HTTP API reads them but cannot create or remove them.
type Cast struct {
	MovieID int64 `gorm:"column:movie_id;primaryKey;autoIncrement:false"`
	ActorID int64 `gorm:"column:actor_id;primaryKey;autoIncrement:false"`
}

func (Cast) TableName() string { return "movie_actor_through" }

type CastModel struct {
	DB *gorm.DB
}

func (m CastModel) Link(movieID, actorID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := m.DB.WithContext(ctx).Create(&Cast{MovieID: movieID, ActorID: actorID}).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateLink
		}
		return err
	}

	return nil
}

func (m CastModel) Unlink(movieID, actorID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.DB.
		WithContext(ctx).
		Where("movie_id = ? AND actor_id = ?", movieID, actorID).
		Delete(&Cast{}).Error
}

func (m CastModel) CountForMovie(movieID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var n int64
	if err := m.DB.WithContext(ctx).Model(&Cast{}).Where("movie_id = ?", movieID).Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

func isUniqueViolation(err error) bool {
	var perr *pgconn.PgError
	if errors.As(err, &perr) {
		return perr.Code == "23505"
	}
	// sqlite has no typed error through gorm
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
