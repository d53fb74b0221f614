package config

import (
    "bufio"
    "fmt"
    "log"
    "os"
    "strconv"
    "strings"
)

// Config carries everything main needs to wire the server.
type Config struct {
    Port      string
    StaticDir string
    Env       string // "production" or anything else for local
}

func Load() Config {
    return Config{
        Port:      getEnvWithDefault("PORT", "8080"),
        StaticDir: getEnvWithDefault("STATIC_DIR", "./static"),
        Env:       getEnvWithDefault("APP_ENV", "development"),
    }
}

// PostgresConnString selects the connection string: in production a
// full DATABASE_URL with SSL enforced, locally individual parameters
// with defaults.
func (c Config) PostgresConnString() string {
    if c.Env == "production" {
        if url := os.Getenv("DATABASE_URL"); url != "" {
            if !strings.Contains(url, "sslmode=") {
                sep := "?"
                if strings.Contains(url, "?") {
                    sep = "&"
                }
                url += sep + "sslmode=require"
            }
            return url
        }
        log.Printf("APP_ENV=production but DATABASE_URL is not set, falling back to individual DB_* parameters")
    }

    host := getEnvWithDefault("DB_HOST", "localhost")
    port := getEnvWithDefault("DB_PORT", "5432")
    user := getEnvWithDefault("DB_USER", "postgres")
    password := getEnvWithDefault("DB_PASSWORD", "postgres")
    dbname := getEnvWithDefault("DB_NAME", "mgnrega")
    sslmode := getEnvWithDefault("DB_SSL_MODE", "disable")
    if c.Env == "production" {
        sslmode = "require"
    }

    return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
        host, port, user, password, dbname, sslmode)
}

// LoadEnv loads variables from a .env file if one exists nearby.
// Missing file is not an error; already-set variables win.
func LoadEnv() error {
    possiblePaths := []string{
        ".env",
        "../.env",
        os.Getenv("MGNREGA_ENV"),
    }

    var loadedFile string
    for _, path := range possiblePaths {
        if path == "" {
            continue
        }
        if _, err := os.Stat(path); err == nil {
            loadedFile = path
            break
        }
    }

    if loadedFile == "" {
        return nil
    }

    file, err := os.Open(loadedFile)
    if err != nil {
        return fmt.Errorf("error opening .env file: %v", err)
    }
    defer file.Close()

    log.Printf("Loading environment variables from %s", loadedFile)
    scanner := bufio.NewScanner(file)
    for scanner.Scan() {
        line := scanner.Text()
        if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
            continue
        }
        parts := strings.SplitN(line, "=", 2)
        if len(parts) != 2 {
            continue
        }
        key := strings.TrimSpace(parts[0])
        value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
        if os.Getenv(key) == "" {
            os.Setenv(key, value)
        }
    }
    return scanner.Err()
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if intValue, err := strconv.Atoi(value); err == nil {
            return intValue
        }
    }
    return defaultValue
}
