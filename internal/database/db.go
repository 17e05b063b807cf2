package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate provisions the two collections the portal persists. The
// statements are idempotent so startup doubles as the
// initialize-on-first-access step of the store.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Binary collation keeps email and password matching
		// case-sensitive, as the login contract requires.
		`CREATE TABLE IF NOT EXISTS users (
			email      VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
			password   VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
			name       VARCHAR(255) NOT NULL DEFAULT '',
			role       VARCHAR(16)  NOT NULL DEFAULT 'user',
			created_at DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS complaints (
			id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			title       VARCHAR(255) NOT NULL,
			description TEXT         NOT NULL,
			location    VARCHAR(255) NOT NULL,
			category    VARCHAR(64)  NOT NULL,
			priority    VARCHAR(16)  NOT NULL,
			status      VARCHAR(16)  NOT NULL DEFAULT 'Pending',
			user_email  VARCHAR(255) NOT NULL,
			created_at  DATETIME(3)  NOT NULL,
			PRIMARY KEY (id),
			KEY idx_complaints_user_email (user_email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
