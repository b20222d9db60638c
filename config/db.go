package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hotel-booking/logger"
	"hotel-booking/models"
)

// baseMySQLConfig applies the settings every connection needs. Dates are
// stored at midnight UTC, so the session must not shift them into Local.
func baseMySQLConfig() *mysqldriver.Config {
	c := mysqldriver.NewConfig()
	c.Net = "tcp"
	c.ParseTime = true
	c.Loc = time.UTC
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	c := baseMySQLConfig()
	c.User = u.User.Username()
	c.Passwd, _ = u.User.Password()
	port := u.Port()
	if port == "" {
		port = "3306"
	}
	c.Addr = u.Hostname() + ":" + port

	c.DBName = strings.TrimPrefix(u.Path, "/")
	if c.DBName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	for key, values := range u.Query() {
		if len(values) > 0 && key != "parseTime" && key != "loc" {
			c.Params[key] = values[0]
		}
	}
	return c.FormatDSN(), nil
}

// ResolveMySQLDSN prefers a full URL (mysql:// or a raw driver DSN) and
// falls back to the discrete host settings.
func ResolveMySQLDSN(cfg DatabaseConfig) (string, error) {
	raw := strings.TrimSpace(cfg.URL)
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		parsed, err := mysqldriver.ParseDSN(raw)
		if err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		parsed.ParseTime = true
		parsed.Loc = time.UTC
		return parsed.FormatDSN(), nil
	}

	c := baseMySQLConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Addr = cfg.Host + ":" + cfg.Port
	c.DBName = cfg.Name
	return c.FormatDSN(), nil
}

func dialector(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "sqlite":
		return sqlite.Open(cfg.Path), nil
	case "mysql":
		dsn, err := ResolveMySQLDSN(cfg)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// ConnectDatabase opens the entity store and migrates its tables.
func ConnectDatabase(cfg DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Gorm(log, gormlogger.Config{
			SlowThreshold:             cfg.SlowThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if strings.EqualFold(cfg.Driver, "sqlite") && strings.Contains(cfg.Path, ":memory:") {
		// every pooled connection would otherwise see its own empty database
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}
	}

	// parent tables first
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	log.Info("database ready", zap.String("driver", cfg.Driver))
	return db, nil
}
