package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/saqi004/calories/config"
	"github.com/saqi004/calories/utils"
)

// issueToken writes a token for subject that the API's auth middleware
// accepts under cfg.
func issueToken(w io.Writer, cfg *config.Config, subject string, ttl time.Duration) error {
	if !cfg.AuthEnabled() {
		return errors.New("JWT_SECRET not set; the API does not require tokens")
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return errors.New("subject must not be empty")
	}
	if ttl <= 0 {
		return fmt.Errorf("token ttl must be positive (got %s)", ttl)
	}
	tok, err := utils.GenerateJWT(cfg.JWTSecret, subject, ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, tok)
	return err
}
