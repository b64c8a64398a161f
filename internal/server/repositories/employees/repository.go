// Package employees persists the employee directory.
package employees

import (
	"context"

	"github.com/dmitrijs2005/geoattend/internal/biometric"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	Get(ctx context.Context, employeeID string) (*models.Employee, error)
	List(ctx context.Context) ([]*models.Employee, error)
	// SetDescriptor stores the descriptor only if none is enrolled yet.
	SetDescriptor(ctx context.Context, employeeID string, d biometric.Descriptor) error
}
