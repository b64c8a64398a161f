// Package locations persists the authorized-location registry.
package locations

import (
	"context"

	"github.com/dmitrijs2005/geoattend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, l *models.AuthorizedLocation) (*models.AuthorizedLocation, error)
	Update(ctx context.Context, l *models.AuthorizedLocation) error
	SetActive(ctx context.Context, id int64, active bool) error
	Get(ctx context.Context, id int64) (*models.AuthorizedLocation, error)
	List(ctx context.Context) ([]*models.AuthorizedLocation, error)
	// ListActive returns the locations clock events are validated against,
	// ordered by id.
	ListActive(ctx context.Context) ([]*models.AuthorizedLocation, error)
}
