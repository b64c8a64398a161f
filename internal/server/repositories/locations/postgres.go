package locations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/dbx"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
)

const selectColumns = `SELECT id, name, latitude, longitude, radius_meters, active, created_at FROM authorized_locations`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, l *models.AuthorizedLocation) (*models.AuthorizedLocation, error) {
	query :=
		`INSERT INTO authorized_locations (name, latitude, longitude, radius_meters, active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		l.Name, l.Latitude, l.Longitude, l.RadiusMeters, l.Active).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}

func (r *PostgresRepository) Update(ctx context.Context, l *models.AuthorizedLocation) error {
	query :=
		`UPDATE authorized_locations
		 SET name = $2, latitude = $3, longitude = $4, radius_meters = $5, active = $6
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, l.ID, l.Name, l.Latitude, l.Longitude, l.RadiusMeters, l.Active)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOne(res, common.ErrLocationNotFound)
}

func (r *PostgresRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query := `UPDATE authorized_locations SET active = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOne(res, common.ErrLocationNotFound)
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.AuthorizedLocation, error) {
	query := selectColumns + ` WHERE id = $1`

	l, err := scanLocation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrLocationNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.AuthorizedLocation, error) {
	return r.list(ctx, selectColumns+` ORDER BY id`)
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]*models.AuthorizedLocation, error) {
	return r.list(ctx, selectColumns+` WHERE active ORDER BY id`)
}

func (r *PostgresRepository) list(ctx context.Context, query string) ([]*models.AuthorizedLocation, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.AuthorizedLocation, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLocation(s scanner) (*models.AuthorizedLocation, error) {
	var l models.AuthorizedLocation
	err := s.Scan(&l.ID, &l.Name, &l.Latitude, &l.Longitude, &l.RadiusMeters, &l.Active, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
