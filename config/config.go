package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	JWTSecret   []byte
	CORSOrigins []string
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		log.Printf("config: loaded %s", f)
	}

	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		JWTSecret:   []byte(os.Getenv("JWT_SECRET")),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
	}
	return cfg, nil
}

// AuthEnabled reports whether the API requires bearer tokens.
func (c *Config) AuthEnabled() bool { return len(c.JWTSecret) > 0 }

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
