package main

import (
	"crypto/rand"
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/nbrandao/equidade/internal/webserver"
	"github.com/nbrandao/equidade/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	// Sessions issued with an ephemeral secret do not survive a restart.
	// Set JWT_SECRET to keep users logged in across deploys.
	jwtSecret := []byte(cfg.JwtSecret)
	if len(jwtSecret) == 0 {
		jwtSecret = make([]byte, 32)
		if _, err := rand.Read(jwtSecret); err != nil {
			log.Fatal(err)
		}
	}

	var sender webserver.Sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	webserverConfig := webserver.Config{
		Version:            version,
		FQDN:               cfg.FQDN,
		Issuer:             cfg.Issuer,
		JwtSecret:          jwtSecret,
		MinPasswordLength:  cfg.MinPasswordLength,
		SessionTimeout:     cfg.SessionTimeout,
		PendingAuthTimeout: cfg.PendingAuthTimeout,
		InviteTimeout:      cfg.InviteTimeout,
	}

	db := infrastructure.Connect(cfg.DBPath)
	controllers := webserver.SetupControllers(webserverConfig, db, sender)
	app := webserver.New(webserverConfig, controllers)

	fmt.Printf("Equidade version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
