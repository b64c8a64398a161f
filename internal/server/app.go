// Package server wires configuration, storage, services and transports
// together and runs the attendance server until it receives a signal.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/geoattend/internal/logging"
	"github.com/dmitrijs2005/geoattend/internal/server/config"
	"github.com/dmitrijs2005/geoattend/internal/server/httpapi"
	"github.com/dmitrijs2005/geoattend/internal/server/notify"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/geoattend/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/geoattend/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	telegram *notify.Telegram

	attendance *services.AttendanceService
	status     *services.StatusService
	employees  *services.EmployeeService
	locations  *services.LocationService
	reports    *services.ReportService
	auth       *services.AuthService
}

// openDB is replaced in tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app, err := newApp(c, logger, db, rm)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) (*App, error) {
	app := &App{config: c, logger: logger, db: db}

	var notifier notify.Notifier = notify.Nop{}
	if c.TelegramBotToken != "" {
		tg, err := notify.NewTelegram(c.TelegramBotToken, c.TelegramChatID, logger)
		if err != nil {
			return nil, err
		}
		app.telegram = tg
		notifier = tg
	}

	attendance, err := services.NewAttendanceService(db, rm, c, notifier, logger)
	if err != nil {
		return nil, fmt.Errorf("attendance service: %w", err)
	}

	app.attendance = attendance
	app.status = services.NewStatusService(db, rm, c)
	app.employees = services.NewEmployeeService(db, rm)
	app.locations = services.NewLocationService(db, rm)
	app.reports = services.NewReportService(db, rm, c, logger)
	app.auth = services.NewAuthService(c, logger)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, gs.Services{
		Attendance: app.attendance,
		Status:     app.status,
		Employees:  app.employees,
		Locations:  app.locations,
		Reports:    app.reports,
		Auth:       app.auth,
	})

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, httpapi.Services{
		Attendance: app.attendance,
		Status:     app.status,
		Employees:  app.employees,
		Locations:  app.locations,
		Reports:    app.reports,
		Auth:       app.auth,
	})

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves gRPC and HTTP until a signal arrives or either server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	if app.telegram != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.telegram.Run(ctx)
		}()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
