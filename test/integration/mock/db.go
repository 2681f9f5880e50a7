// Package mock provides in-process test doubles for external infrastructure.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trackbill/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbMock *DB

// DB wraps a shared in-memory SQLite connection that stands in for Postgres
// during integration runs. A single connection is reused across scenarios;
// Reset wipes the rows between them.
type DB struct {
	Conn *gorm.DB
	// models is ordered parents before children so migration and teardown
	// can walk it in the right direction.
	models []any
}

// NewDB returns the shared database mock, opening it on first use.
func NewDB() *DB {
	dbOnce.Do(func() {
		dbMock = open()
	})
	return dbMock
}

func open() *DB {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}

	// A single connection keeps the shared in-memory database alive for the
	// whole suite.
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect to test database: %v", err))
	}

	d := &DB{
		Conn: conn,
		models: []any{
			&model.BrandModel{},
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.ProjectModel{},
			&model.TaskModel{},
			&model.TimeEntryModel{},
			&model.InvoiceModel{},
			&model.LineItemModel{},
			&model.EmailQueueModel{},
		},
	}

	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return d
}

func (d *DB) migrate() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		if err := d.Conn.Migrator().DropTable(d.models[i]); err != nil {
			return err
		}
	}

	if err := d.Conn.AutoMigrate(d.models...); err != nil {
		return err
	}

	for _, m := range d.models {
		if !d.Conn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}

	return nil
}

// Reset deletes every row while keeping the schema, children first so
// foreign keys never block the sweep.
func (d *DB) Reset() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(d.models[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}
