// Package wire provides dependency injection for the slt application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"log"
	"os"
	"sync"

	"github.com/rs/zerolog"

	cliadapter "github.com/example/slt/internal/adapters/cli"
	"github.com/example/slt/internal/adapters/sqlite"
	"github.com/example/slt/internal/app"
	"github.com/example/slt/internal/config"
	"github.com/example/slt/internal/db"
	"github.com/example/slt/internal/logging"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/roster"
	"github.com/example/slt/internal/store"
)

var (
	cfg      *config.Config
	logger   zerolog.Logger
	database *sql.DB
	registry *store.Registry

	stateService      *app.StateServiceImpl
	allocationService primary.AllocationService
	planService       primary.PlanService
	sessionService    primary.SessionService
	evaluationService primary.EvaluationService
	caseService       primary.CaseQueryService
	directoryService  primary.DirectoryService
	dashboardService  primary.DashboardService
	reportService     primary.ReportService
	logService        primary.LogService

	once sync.Once
)

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	once.Do(initServices)
	return logger
}

// AllocationService returns the singleton AllocationService instance.
func AllocationService() primary.AllocationService {
	once.Do(initServices)
	return allocationService
}

// PlanService returns the singleton PlanService instance.
func PlanService() primary.PlanService {
	once.Do(initServices)
	return planService
}

// SessionService returns the singleton SessionService instance.
func SessionService() primary.SessionService {
	once.Do(initServices)
	return sessionService
}

// EvaluationService returns the singleton EvaluationService instance.
func EvaluationService() primary.EvaluationService {
	once.Do(initServices)
	return evaluationService
}

// CaseService returns the singleton CaseQueryService instance.
func CaseService() primary.CaseQueryService {
	once.Do(initServices)
	return caseService
}

// DirectoryService returns the singleton DirectoryService instance.
func DirectoryService() primary.DirectoryService {
	once.Do(initServices)
	return directoryService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error

	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err = logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to initialize logging: %v", err)
	}

	database, err = db.Open(cfg.DBDriver, cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	seed := roster.Default()
	if cfg.RosterFile != "" {
		seed, err = roster.LoadFile(cfg.RosterFile)
		if err != nil {
			log.Fatalf("failed to load roster: %v", err)
		}
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	stateRepo := sqlite.NewStateRepository(database)
	eventRepo := sqlite.NewCaseEventRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(eventRepo)

	stateService = app.NewStateService(stateRepo, logger)
	registry, err = stateService.Load(context.Background(), seed)
	if err != nil {
		log.Fatalf("failed to load store: %v", err)
	}

	// Create services (primary ports implementation)
	allocationService = app.NewAllocationService(registry, logWriter, logger)
	planService = app.NewPlanService(registry, logWriter, logger)
	sessionService = app.NewSessionService(registry, logWriter, logger)
	evaluationService = app.NewEvaluationService(registry, logWriter, logger)
	caseService = app.NewCaseQueryService(registry)
	directoryService = app.NewDirectoryService(registry)
	dashboardService = app.NewDashboardService(registry)
	reportService = app.NewReportService(registry, cfg.ReportDir)
	logService = app.NewLogService(eventRepo)
}

// Flush saves the store if a command changed it. It is a no-op when no
// command touched the services.
func Flush(ctx context.Context) error {
	if stateService == nil || registry == nil {
		return nil
	}
	return stateService.Flush(ctx, registry)
}

// Close releases the database.
func Close() error {
	if database == nil {
		return nil
	}
	return database.Close()
}

// CaseAdapter returns a new CaseAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CaseAdapter() *cliadapter.CaseAdapter {
	return CaseAdapterWithOutput(os.Stdout)
}

// CaseAdapterWithOutput returns a new CaseAdapter writing to the given output.
func CaseAdapterWithOutput(out io.Writer) *cliadapter.CaseAdapter {
	once.Do(initServices)
	return cliadapter.NewCaseAdapter(caseService, out)
}

// DashboardAdapter returns a new DashboardAdapter writing to stdout.
func DashboardAdapter() *cliadapter.DashboardAdapter {
	once.Do(initServices)
	return cliadapter.NewDashboardAdapter(dashboardService, os.Stdout)
}

// HistoryAdapter returns a new HistoryAdapter writing to stdout.
func HistoryAdapter() *cliadapter.HistoryAdapter {
	once.Do(initServices)
	return cliadapter.NewHistoryAdapter(logService, os.Stdout)
}
