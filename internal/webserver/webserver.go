package webserver

import (
	"embed"
	"io/fs"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/infrastructure"
)

//go:embed views
var viewsFS embed.FS

type Config struct {
	Version            string
	FQDN               string
	Issuer             string
	JwtSecret          []byte
	MinPasswordLength  int
	SessionTimeout     time.Duration
	PendingAuthTimeout time.Duration
	InviteTimeout      time.Duration
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	viewsDir, err := fs.Sub(viewsFS, "views")
	if err != nil {
		log.Fatal(err)
	}

	engine := infrastructure.TemplateEngine(viewsDir)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		AppName:               cfg.Version,
		DisableStartupMessage: true,
		ErrorHandler:          controllers.ErrorHandler,
	})

	routes(app, controllers)

	return app
}
