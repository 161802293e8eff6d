// Package database centralises sqlx connection helpers.  The driver is
// go-sql-driver/mysql, which also covers MariaDB deployments.
//
// Public entry points:
//
//	Open(dsn)                              – conservative pool defaults.
//	OpenWithOptions(dsn, maxOpen, maxIdle) – fine-grained control.
//
// Both helpers Ping the database before returning so the service fails
// fast during bootstrap.  Callers Close() the returned *sqlx.DB when done.
package database

import (
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Open returns a *sqlx.DB with sane defaults: 10 max open, 5 idle, and a
// 30-minute connection lifetime.  Plenty for a single-form capture service.
func Open(dsn string) (*sqlx.DB, error) {
	return OpenWithOptions(dsn, 10, 5)
}

// OpenWithOptions lets callers tune maxOpen and maxIdle per pool.
func OpenWithOptions(dsn string, maxOpen, maxIdle int) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
