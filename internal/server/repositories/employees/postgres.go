package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/geoattend/internal/biometric"
	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/dbx"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	descriptor, err := biometric.Encode(e.Descriptor)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO employees (employee_id, name, email, descriptor)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		e.EmployeeID, e.Name, nullString(e.Email), descriptor).Scan(&e.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) Get(ctx context.Context, employeeID string) (*models.Employee, error) {
	query :=
		`SELECT employee_id, name, email, descriptor, created_at FROM employees
		 WHERE employee_id = $1
		 `

	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Employee, error) {
	query :=
		`SELECT employee_id, name, email, descriptor, created_at FROM employees
		 ORDER BY employee_id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) SetDescriptor(ctx context.Context, employeeID string, d biometric.Descriptor) error {
	descriptor, err := biometric.Encode(d)
	if err != nil {
		return err
	}

	query :=
		`UPDATE employees SET descriptor = $2
		 WHERE employee_id = $1 AND descriptor IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, employeeID, descriptor)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return dbx.ExpectOne(res, common.ErrVersionConflict)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s scanner) (*models.Employee, error) {
	var (
		e          models.Employee
		email      sql.NullString
		descriptor []byte
	)
	if err := s.Scan(&e.EmployeeID, &e.Name, &email, &descriptor, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Email = email.String

	d, err := biometric.Decode(descriptor)
	if err != nil {
		return nil, err
	}
	e.Descriptor = d

	return &e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
