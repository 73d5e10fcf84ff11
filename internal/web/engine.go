package web

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// Engine serves the embedded page templates, so the binary ships with its
// views.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(viewsFS), ".html")
}
