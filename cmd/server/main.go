package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/saqi004/calories/config"
	"github.com/saqi004/calories/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	subject := flag.String("issue-token", "", "Print a bearer token for this subject and exit.")
	ttl := flag.Duration("token-ttl", 72*time.Hour, "Lifetime of a token minted with -issue-token.")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *subject != "" {
		if err := issueToken(os.Stdout, cfg, *subject, *ttl); err != nil {
			log.Fatalf("issue token: %v", err)
		}
		return
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if !cfg.AuthEnabled() {
		log.Printf("JWT_SECRET not set; /api/v1 is open")
	}

	r := routes.SetupRouter(cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
