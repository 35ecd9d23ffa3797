package config

import (
	"context"
	"database/sql"
	"log"
	"net"
	"strconv"
	"time"

	intdb "redbus/internal/db"
	"redbus/internal/domain"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/go-sql-driver/mysql"
)

// DSN renders the driver-specific data source name.
func (d DBConfig) DSN() string {
	if d.Driver == "duckdb" {
		return d.Path
	}
	cfg := mysql.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	cfg.DBName = d.Name
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Timeout = 5 * time.Second
	cfg.ReadTimeout = 30 * time.Second
	cfg.WriteTimeout = 30 * time.Second
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// OpenDB opens the session's storage handle and pings it.
// The caller owns the handle and must close it with CloseDB.
func OpenDB(ctx context.Context, d DBConfig) (*sql.DB, error) {
	db, err := sql.Open(d.Driver, d.DSN())
	if err != nil {
		return nil, intdb.Wrap("open "+d.Driver, err)
	}

	db.SetMaxOpenConns(d.MaxOpenConns)
	db.SetMaxIdleConns(d.MaxOpenConns)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		log.Printf("[DB] connect failed driver=%s: %v", d.Driver, err)
		return nil, domain.StorageError{Op: "ping " + d.Driver, Unavailable: true, Err: err}
	}

	log.Printf("[DB] connected driver=%s target=%s", d.Driver, d.target())
	return db, nil
}

// CloseDB releases the session's storage handle.
func CloseDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Printf("[DB] close failed: %v", err)
		return
	}
	log.Println("[DB] connection closed")
}

func (d DBConfig) target() string {
	if d.Driver == "duckdb" {
		return d.Path
	}
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port)) + "/" + d.Name
}
