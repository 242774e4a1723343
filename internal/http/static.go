package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"igclean/pkg/logger"
)

const (
	headerCacheControl = "Cache-Control"
	assetCacheControl  = "public, max-age=86400"
)

// registerStatic serves the UI bundle from dir. Unknown non-API paths fall
// back to index.html so the page can own its routing.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index not found", "module", "http", "path", indexPath)
		return
	}

	fileServer := nethttp.FileServer(nethttp.Dir(dir))

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if isAPIPath(requestPath) {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" {
			return serveIndex(c, indexPath)
		}

		candidate := filepath.Join(dir, cleanPath)
		fileInfo, err := os.Stat(candidate)
		if err == nil && !fileInfo.IsDir() {
			c.Response().Header().Set(headerCacheControl, assetCacheControl)
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		return serveIndex(c, indexPath)
	})
}

func serveIndex(c echo.Context, indexPath string) error {
	c.Response().Header().Set(headerCacheControl, "no-cache")
	return c.File(indexPath)
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
