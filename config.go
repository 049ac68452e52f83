package main

import "time"

type Config struct {
	DBPath             string        `env:"DBPATH" env-default:"equidade.db"`
	Port               string        `env:"PORT" env-default:"3000"`
	FQDN               string        `env:"FQDN" env-default:"http://localhost:3000"`
	JwtSecret          string        `env:"JWT_SECRET"`
	MinPasswordLength  int           `env:"MIN_PASSWORD_LENGTH" env-default:"5"`
	SessionTimeout     time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	PendingAuthTimeout time.Duration `env:"PENDING_AUTH_TIMEOUT" env-default:"5m"`
	InviteTimeout      time.Duration `env:"INVITE_TIMEOUT" env-default:"168h"`
	Issuer             string        `env:"ISSUER" env-default:"Equidade"`
	SmtpServer         string        `env:"SMTP_SERVER"`
	SmtpPort           int           `env:"SMTP_PORT" env-default:"587"`
	SmtpUser           string        `env:"SMTP_USER"`
	SmtpPassword       string        `env:"SMTP_PASSWORD"`
}
