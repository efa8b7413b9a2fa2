package db

import (
	"drafter/internal/auth"
	"drafter/internal/project"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens Postgres when a DSN is configured and falls back to a local
// CGO-free SQLite file otherwise, so the service runs without any external
// database for local development.
//
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors; registration
// depends on telling those apart from other persistence failures.
func Connect(dsn, sqlitePath string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if dsn != "" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	return gorm.Open(sqlite.Open(sqlitePath), cfg)
}

func AutoMigrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&project.Project{},
	); err != nil {
		return err
	}

	if err := gdb.Exec(`create index if not exists idx_projects_user on projects(user_id);`).Error; err != nil {
		return err
	}

	return nil
}
