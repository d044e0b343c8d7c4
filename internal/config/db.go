package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// dsn builds the driver connection string. loc pins scanned DATE and DATETIME
// values to the application timezone; with the host's local zone instead, a
// stored travel date reads back shifted on any non-Manila host.
func dsn(env Env) string {
	auth := env.DBUser
	if env.DBPass != "" {
		auth = fmt.Sprintf("%s:%s", env.DBUser, env.DBPass)
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?parseTime=true&loc=Asia%%2FManila&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		auth, env.DBHost, env.DBPort, env.DBName)
}

// OpenDB connects to MySQL and verifies the connection before returning it.
func OpenDB(env Env) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(env))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
