package config

import (
    "context"
    "database/sql"
    "fmt"
    "log"
    "time"

    _ "github.com/lib/pq"
)

const (
    maxRetries = 5
    retryDelay = 5 * time.Second
)

// InitDBWithRetry opens the PostgreSQL pool, retrying a few times so a
// database that is still coming up does not kill the server on deploy.
func InitDBWithRetry(cfg Config) (*sql.DB, error) {
    var db *sql.DB
    var err error
    for i := 0; i < maxRetries; i++ {
        db, err = initDB(cfg)
        if err == nil {
            return db, nil
        }
        log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(retryDelay)
    }
    return nil, fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func initDB(cfg Config) (*sql.DB, error) {
    db, err := sql.Open("postgres", cfg.PostgresConnString())
    if err != nil {
        return nil, fmt.Errorf("error opening PostgreSQL database: %v", err)
    }

    db.SetMaxOpenConns(getEnvAsInt("DB_MAX_OPEN_CONNS", 25))
    db.SetMaxIdleConns(getEnvAsInt("DB_MAX_IDLE_CONNS", 5))
    db.SetConnMaxLifetime(5 * time.Minute)

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()

    if err = db.PingContext(ctx); err != nil {
        db.Close()
        return nil, fmt.Errorf("error connecting to PostgreSQL database: %v", err)
    }

    log.Printf("Successfully connected to PostgreSQL database")
    return db, nil
}
