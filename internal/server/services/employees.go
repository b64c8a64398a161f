package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/geoattend/internal/biometric"
	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/dbx"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/repomanager"
)

// EmployeeService manages the employee directory and descriptor enrollment.
type EmployeeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEmployeeService(db *sql.DB, m repomanager.RepositoryManager) *EmployeeService {
	return &EmployeeService{db: db, repomanager: m}
}

// Create registers an employee. The descriptor is optional and may be
// enrolled later, exactly once.
func (s *EmployeeService) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	e.EmployeeID = strings.TrimSpace(e.EmployeeID)
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)

	if e.EmployeeID == "" {
		return nil, common.Validationf("employee id is required")
	}
	if e.Name == "" {
		return nil, common.Validationf("employee name is required")
	}
	if e.Descriptor != nil {
		if err := e.Descriptor.Validate(); err != nil {
			return nil, err
		}
	}

	created, err := s.repomanager.Employees(s.db).Create(ctx, e)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("employee %s: %w", e.EmployeeID, err)
		}
		return nil, fmt.Errorf("error creating employee: %w", err)
	}
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, employeeID string) (*models.Employee, error) {
	e, err := s.repomanager.Employees(s.db).Get(ctx, employeeID)
	if err != nil {
		return nil, readError("get employee", err)
	}
	return e, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]*models.Employee, error) {
	list, err := s.repomanager.Employees(s.db).List(ctx)
	if err != nil {
		return nil, readError("list employees", err)
	}
	return list, nil
}

// EnrollDescriptor stores the reference descriptor for an employee who has
// none. Re-enrollment fails with common.ErrAlreadyExists.
func (s *EmployeeService) EnrollDescriptor(ctx context.Context, employeeID string, d biometric.Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Employees(tx)

		e, err := repo.Get(ctx, employeeID)
		if err != nil {
			return readError("get employee", err)
		}
		if e.Enrolled() {
			return fmt.Errorf("descriptor for %s: %w", employeeID, common.ErrAlreadyExists)
		}

		if err := repo.SetDescriptor(ctx, employeeID, d); err != nil {
			if errors.Is(err, common.ErrVersionConflict) {
				return fmt.Errorf("descriptor for %s: %w", employeeID, common.ErrAlreadyExists)
			}
			return fmt.Errorf("error enrolling descriptor: %w", err)
		}
		return nil
	})
}
