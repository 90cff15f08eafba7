package migration

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

const dialect = "postgres"

func source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "sql",
	}
}

// Run applies (up) or reverts (down) up to max migrations; max 0 means all.
func Run(db *sql.DB, direction string, max int, log *logrus.Logger) (int, error) {
	var dir migrate.MigrationDirection
	switch direction {
	case "up":
		dir = migrate.Up
	case "down":
		dir = migrate.Down
	default:
		return 0, fmt.Errorf("unknown migration direction %q", direction)
	}

	n, err := migrate.ExecMax(db, dialect, source(), dir, max)
	if err != nil {
		log.WithError(err).WithField("direction", direction).Error("Error executing migration")
		return n, err
	}

	log.WithFields(logrus.Fields{
		"direction": direction,
		"applied":   n,
	}).Info("Migrations applied")
	return n, nil
}

func Pending(db *sql.DB) (int, error) {
	planned, _, err := migrate.PlanMigration(db, dialect, source(), migrate.Up, 0)
	if err != nil {
		return 0, err
	}
	return len(planned), nil
}
