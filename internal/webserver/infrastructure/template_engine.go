package infrastructure

import (
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

func TemplateEngine(viewsFS fs.FS) *html.Engine {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("roleName", func(role int) string {
		switch role {
		case model.RoleAdmin:
			return "admin"
		case model.RoleRegular:
			return "user"
		}
		return "unknown"
	})

	return engine
}
