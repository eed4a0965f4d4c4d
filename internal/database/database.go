package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"glassworks/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate keeps the schema in sync with the domain model. History tables are
// append-only by convention: nothing in the codebase updates or deletes rows
// in them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Company{},
		&domain.User{},
		&domain.Settings{},
		&domain.GlassPrice{},
		&domain.HardwareItem{},
		&domain.ServiceItem{},
		&domain.BaseCost{},
		&domain.Template{},
		&domain.Status{},
		&domain.Project{},
		&domain.PriceSnapshot{},
		&domain.StatusChange{},
	)
}
