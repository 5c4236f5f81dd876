package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

//go:embed static/index.html
var indexHTML []byte

// registerStatic serves the embedded display client. The index page is
// served directly to avoid http.FileServer's ./index.html redirect.
func registerStatic(engine *gin.Engine) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})
	engine.StaticFS("/static", http.FS(sub))
}
