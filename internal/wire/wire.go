// Package wire provides dependency injection for the monitoreo CLI.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/monitoreo/internal/adapters/netprobe"
	"github.com/example/monitoreo/internal/adapters/rest"
	"github.com/example/monitoreo/internal/adapters/sqlite"
	"github.com/example/monitoreo/internal/app"
	"github.com/example/monitoreo/internal/config"
	"github.com/example/monitoreo/internal/db"
	"github.com/example/monitoreo/internal/ports/primary"
)

var (
	cfg             *config.Config
	authService     primary.AuthService
	sessionService  primary.SessionService
	visitService    primary.VisitService
	monitorService  primary.MonitorService
	syncService     primary.SyncService
	quantityService primary.QuantityService
	schoolService   primary.SchoolService
	peopleService   primary.PeopleService
	userService     primary.UserService
	reportService   primary.ReportService
	exportService   primary.ExportService
	once            sync.Once
)

// Cfg returns the loaded configuration.
func Cfg() *config.Config {
	once.Do(initServices)
	return cfg
}

// AuthService returns the singleton AuthService instance.
func AuthService() primary.AuthService {
	once.Do(initServices)
	return authService
}

// SessionService returns the singleton SessionService instance.
func SessionService() primary.SessionService {
	once.Do(initServices)
	return sessionService
}

// VisitService returns the singleton VisitService instance.
func VisitService() primary.VisitService {
	once.Do(initServices)
	return visitService
}

// MonitorService returns the singleton MonitorService instance.
func MonitorService() primary.MonitorService {
	once.Do(initServices)
	return monitorService
}

// SyncService returns the singleton SyncService instance.
func SyncService() primary.SyncService {
	once.Do(initServices)
	return syncService
}

// QuantityService returns the singleton QuantityService instance.
func QuantityService() primary.QuantityService {
	once.Do(initServices)
	return quantityService
}

// SchoolService returns the singleton SchoolService instance.
func SchoolService() primary.SchoolService {
	once.Do(initServices)
	return schoolService
}

// PeopleService returns the singleton PeopleService instance.
func PeopleService() primary.PeopleService {
	once.Do(initServices)
	return peopleService
}

// UserService returns the singleton UserService instance.
func UserService() primary.UserService {
	once.Do(initServices)
	return userService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// ExportService returns the singleton ExportService instance.
func ExportService() primary.ExportService {
	once.Do(initServices)
	return exportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dataDir, err := db.DataDir()
	if err != nil {
		log.Fatalf("failed to resolve data directory: %v", err)
	}
	cfg, err = config.LoadConfig(dataDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Secondary adapters.
	queue := sqlite.NewQueueStore(database)
	cache := sqlite.NewKVStore(database)
	gateway := rest.NewClient(cfg.BaseURI)
	network := netprobe.New(cfg.BaseURI)

	// Services (primary ports implementation).
	authService = app.NewAuthService(gateway, cache, network)
	sessionService = app.NewSessionService(queue, cache, gateway, network)
	visitService = app.NewVisitService(queue, cache, gateway, network)
	monitorService = app.NewMonitorService(queue, cache, gateway, network)
	quantityService = app.NewQuantityService(queue, cache, gateway, network)
	syncService = app.NewSyncService(queue, gateway, network, quantityService)
	schoolService = app.NewSchoolService(cache, gateway, network)
	peopleService = app.NewPeopleService(cache, gateway, network)
	userService = app.NewUserService(cache, gateway, network)
	reportService = app.NewReportService(cache, gateway, network)
	exportService = app.NewExportService(cache, gateway, network)
}
