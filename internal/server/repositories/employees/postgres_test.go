package employees

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/geoattend/internal/biometric"
	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQ = `(?s)^INSERT\s+INTO\s+employees\s*\(employee_id,\s*name,\s*email,\s*descriptor\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+created_at\s*$`
	getQ    = `(?s)^SELECT\s+employee_id,\s*name,\s*email,\s*descriptor,\s*created_at\s+FROM\s+employees\s+WHERE\s+employee_id\s*=\s*\$1\s*$`
	listQ   = `(?s)^SELECT\s+employee_id,.*FROM\s+employees\s+ORDER\s+BY\s+employee_id\s*$`
	enrollQ = `(?s)^UPDATE\s+employees\s+SET\s+descriptor\s*=\s*\$2\s+WHERE\s+employee_id\s*=\s*\$1\s+AND\s+descriptor\s+IS\s+NULL\s*$`
)

var columns = []string{"employee_id", "name", "email", "descriptor", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

func encoded(t *testing.T, d biometric.Descriptor) []byte {
	t.Helper()
	b, err := biometric.Encode(d)
	require.NoError(t, err)
	return b
}

func TestCreate_Success(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	created := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	d := biometric.Descriptor{0.1, 0.2, 0.3}

	mock.ExpectQuery(insertQ).
		WithArgs("E1001", "Ada", "ada@example.com", encoded(t, d)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	got, err := repo.Create(context.Background(), &models.Employee{EmployeeID: "E1001", Name: "Ada", Email: "ada@example.com", Descriptor: d})
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_WithoutDescriptorAndEmail(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).
		WithArgs("E1002", "Bob", nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	_, err := repo.Create(context.Background(), &models.Employee{EmployeeID: "E1002", Name: "Bob"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key"})

	_, err := repo.Create(context.Background(), &models.Employee{EmployeeID: "E1001", Name: "Ada"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Employee{EmployeeID: "E1001", Name: "Ada"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestGet_Found(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	d := biometric.Descriptor{0.5, -0.25}

	mock.ExpectQuery(getQ).
		WithArgs("E1001").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("E1001", "Ada", "ada@example.com", encoded(t, d), time.Now()))

	got, err := repo.Get(context.Background(), "E1001")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, d, got.Descriptor)
	assert.True(t, got.Enrolled())
}

func TestGet_NullColumns(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(getQ).
		WithArgs("E1002").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("E1002", "Bob", nil, nil, time.Now()))

	got, err := repo.Get(context.Background(), "E1002")
	require.NoError(t, err)
	assert.Empty(t, got.Email)
	assert.False(t, got.Enrolled())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(getQ).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrEmployeeNotFound)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGet_CorruptDescriptor(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(getQ).
		WithArgs("E1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("E1", "X", nil, []byte{0xff, 0x00}, time.Now()))

	_, err := repo.Get(context.Background(), "E1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestList(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(listQ).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("E1", "Ada", nil, nil, time.Now()).
			AddRow("E2", "Bob", "bob@example.com", nil, time.Now()))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "E1", got[0].EmployeeID)
	assert.Equal(t, "bob@example.com", got[1].Email)
}

func TestList_RowError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(listQ).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("E1", "Ada", nil, nil, time.Now()).
			RowError(0, errors.New("broken row")))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestSetDescriptor(t *testing.T) {
	d := biometric.Descriptor{1, 2, 3}

	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		want    error
		wantMsg string
	}{
		{name: "stored", result: sqlmock.NewResult(0, 1)},
		{name: "already enrolled", result: sqlmock.NewResult(0, 0), want: common.ErrVersionConflict},
		{name: "unexpected rows", result: sqlmock.NewResult(0, 2), wantMsg: "unexpected rows affected: 2"},
		{name: "rows affected error", result: sqlmock.NewErrorResult(errors.New("rows-err")), wantMsg: "rows affected"},
		{name: "exec error", execErr: errors.New("db down"), wantMsg: "db error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newRepoWithMock(t)

			exp := mock.ExpectExec(enrollQ).WithArgs("E1", encoded(t, d))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.SetDescriptor(context.Background(), "E1", d)
			switch {
			case tt.want != nil:
				assert.ErrorIs(t, err, tt.want)
			case tt.wantMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
