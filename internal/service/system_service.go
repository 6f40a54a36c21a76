package service

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/database"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db       *sql.DB
	features map[string]bool
}

// NewSystemService creates a new SystemService.
// features lists optional capabilities reported by the version endpoint.
func NewSystemService(db *sql.DB, features map[string]bool) *SystemService {
	if features == nil {
		features = map[string]bool{}
	}
	return &SystemService{
		db:       db,
		features: features,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version, the applied schema version and
// whether migrations embedded in the binary are still pending.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	dbVersion, err := database.SchemaVersion(s.db)
	if err != nil {
		return model.VersionInfo{}, err
	}

	latest, err := database.LatestSchemaVersion()
	if err != nil {
		return model.VersionInfo{}, err
	}

	info := model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  dbVersion,
		Features:   s.features,
	}

	current, _ := strconv.ParseInt(dbVersion, 10, 64)
	target, _ := strconv.ParseInt(latest, 10, 64)
	if current < target {
		msg := fmt.Sprintf("database schema %s is behind %s", dbVersion, latest)
		info.MigrationNeeded = true
		info.MigrationMessage = &msg
	}

	return info, nil
}
