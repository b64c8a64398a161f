package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/dbx"
	"github.com/dmitrijs2005/geoattend/internal/geo"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/repomanager"
)

// LocationInput carries the editable fields of an authorized location.
// A zero radius means models.DefaultRadiusMeters; a nil Active means
// active on create and unchanged on update.
type LocationInput struct {
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Active       *bool
}

func (in LocationInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return common.Validationf("location name is required")
	}
	if err := (geo.Point{Latitude: in.Latitude, Longitude: in.Longitude}).Validate(); err != nil {
		return err
	}
	if in.RadiusMeters < 0 || math.IsNaN(in.RadiusMeters) || math.IsInf(in.RadiusMeters, 0) {
		return common.Validationf("radius must be positive, got %v", in.RadiusMeters)
	}
	return nil
}

func (in LocationInput) radius() float64 {
	if in.RadiusMeters == 0 {
		return models.DefaultRadiusMeters
	}
	return in.RadiusMeters
}

// LocationService manages the authorized-location registry.
type LocationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLocationService(db *sql.DB, m repomanager.RepositoryManager) *LocationService {
	return &LocationService{db: db, repomanager: m}
}

func (s *LocationService) Create(ctx context.Context, in LocationInput) (*models.AuthorizedLocation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	l, err := s.repomanager.Locations(s.db).Create(ctx, &models.AuthorizedLocation{
		Name:         strings.TrimSpace(in.Name),
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		RadiusMeters: in.radius(),
		Active:       active,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating location: %w", err)
	}
	return l, nil
}

func (s *LocationService) Update(ctx context.Context, id int64, in LocationInput) (*models.AuthorizedLocation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var updated *models.AuthorizedLocation
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Locations(tx)

		l, err := repo.Get(ctx, id)
		if err != nil {
			return readError("get location", err)
		}

		l.Name = strings.TrimSpace(in.Name)
		l.Latitude = in.Latitude
		l.Longitude = in.Longitude
		l.RadiusMeters = in.radius()
		if in.Active != nil {
			l.Active = *in.Active
		}

		if err := repo.Update(ctx, l); err != nil {
			return readError("update location", err)
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *LocationService) SetActive(ctx context.Context, id int64, active bool) error {
	if err := s.repomanager.Locations(s.db).SetActive(ctx, id, active); err != nil {
		return readError("set location active", err)
	}
	return nil
}

func (s *LocationService) List(ctx context.Context) ([]*models.AuthorizedLocation, error) {
	list, err := s.repomanager.Locations(s.db).List(ctx)
	if err != nil {
		return nil, readError("list locations", err)
	}
	return list, nil
}
