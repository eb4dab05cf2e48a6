package service

import (
	"database/sql"
	"fmt"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/database"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version.
func (s *SystemService) CheckVersion() string {
	return version.Version
}

// SchemaVersion returns the database schema version as a string.
func (s *SystemService) SchemaVersion() string {
	v, err := database.SchemaVersion(s.db)
	if err != nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", v)
}
