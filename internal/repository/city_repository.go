package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"soulsynergy/internal/domain"
)

type CityRepository interface {
	List(ctx context.Context) ([]domain.City, error)
	GetByID(ctx context.Context, id int64) (*domain.City, error)
}

type cityRepository struct {
	db *sqlx.DB
}

func NewCityRepository(db *sqlx.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) List(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	err := r.db.SelectContext(ctx, &cities, `SELECT * FROM cities ORDER BY name ASC`)
	return cities, err
}

func (r *cityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	var city domain.City
	err := r.db.GetContext(ctx, &city, `SELECT * FROM cities WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}
