// Package database implement connection to database service and initialize ORM.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	// pgx is the driver gorm's postgres dialector runs on
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"juggle-backend/internal/config"
	"juggle-backend/internal/model"
)

// DBinstanceStruct is a struct that holds the GORM DB instance and related information.
type DBinstanceStruct struct {
	*gorm.DB
	// Config
	Config *DBConfig
	// cached raw DB and mutex for lazy-init
	sqlDB *sql.DB
	mu    sync.RWMutex
}

// DBConfig holds the configuration parameters for connecting to a database.
type DBConfig struct {
	Host      string
	Port      string
	User      string
	Password  string
	DBName    string
	Constr    string
	useConstr bool
}

func (d *DBConfig) getDsn() (string, error) {
	if d.useConstr {
		if d.Constr == "" {
			return "", errors.New("DB_CONNECTION_STR is empty")
		}
		return d.Constr, nil
	}
	if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.DBName == "" {
		return "", errors.New("database configuration is incomplete")
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Password, d.Host, d.Port, d.DBName), nil
}

// ConfigFrom converts loaded settings into a DBConfig.
func ConfigFrom(c config.DatabaseConfig) *DBConfig {
	return &DBConfig{
		Host:      c.Host,
		Port:      c.Port,
		User:      c.User,
		Password:  c.Password,
		DBName:    c.Name,
		Constr:    c.ConnectionStr,
		useConstr: c.UseConnectionStr,
	}
}

var (
	dbInstance *DBinstanceStruct
	dbMu       sync.Mutex
)

// NewDBInstance creates a new DBinstanceStruct with the given configuration.
// It establishes a connection to the database, migrates the schema and returns the instance
// or an error if any step fails.
func NewDBInstance(config *DBConfig) (*DBinstanceStruct, error) {

	connStr, err := config.getDsn()
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	if gin.IsDebugging() {
		gdb = gdb.Debug()
	}

	newDb := &DBinstanceStruct{
		DB:     gdb,
		Config: config,
	}

	if err := newDb.installExtension(); err != nil {
		return nil, fmt.Errorf("failed to install extension: %w", err)
	}
	if err := newDb.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return newDb, nil
}

// GetMainDB returns the main database instance, initializing it from c on first use.
func GetMainDB(c config.DatabaseConfig) (*DBinstanceStruct, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	// Reuse Connection
	if dbInstance != nil {
		return dbInstance, nil
	}

	db, err := NewDBInstance(ConfigFrom(c))
	if err != nil {
		return nil, err
	}
	dbInstance = db
	return db, nil
}

// Raw returns the underlying *sql.DB, caching it after the first successful retrieval.
// It is safe for concurrent use.
func (d *DBinstanceStruct) Raw() (*sql.DB, error) {
	if d == nil {
		return nil, fmt.Errorf("DBinstanceStruct is nil")
	}

	// fast path: cached value
	d.mu.RLock()
	if d.sqlDB != nil {
		raw := d.sqlDB
		d.mu.RUnlock()
		return raw, nil
	}
	d.mu.RUnlock()

	// slow path: initialize
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sqlDB != nil {
		return d.sqlDB, nil
	}
	if d.DB == nil {
		return nil, fmt.Errorf("gorm DB is nil")
	}
	raw, err := d.DB.DB()
	if err != nil {
		return nil, err
	}
	d.sqlDB = raw
	return raw, nil
}

// Migrate database
func (d *DBinstanceStruct) Migrate() error {
	return d.AutoMigrate(model.MigrateAble...)
}

// Health pings the database and reports pool statistics. The "status" key is "up" or "down".
func (d *DBinstanceStruct) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	stats := make(map[string]string)

	oriDB, err := d.Raw()
	if err == nil {
		err = oriDB.PingContext(ctx)
	}
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		slog.Error("db down", "error", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := oriDB.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	// lock waits on job rows show up here when many professionals apply to one job at once
	switch {
	case dbStats.WaitCount > 1000:
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	case dbStats.OpenConnections > 40:
		stats["message"] = "The database is experiencing heavy load."
	}

	return stats
}

// Close closes the database connection.
func (d *DBinstanceStruct) Close() error {
	slog.Info("disconnected from database", "host", d.Config.Host, "name", d.Config.DBName)
	oriDB, err := d.Raw()
	if err != nil {
		return err
	}
	return oriDB.Close()
}

func (d *DBinstanceStruct) installExtension() error {
	err := d.WithContext(context.Background()).Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
	if err != nil {
		return err
	}
	slog.Debug("uuid-ossp extension installed or already exists")
	return nil
}
