package controllers

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ibomiri431-oss/metra-feer/app/services"
	"github.com/ibomiri431-oss/metra-feer/config"
	"github.com/ibomiri431-oss/metra-feer/pkg/ctx"
	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
)

// StaticController serves the prebuilt frontend bundle and uploaded
// product media.
type StaticController struct {
	uploads *services.UploadService
}

func NewStaticController(uploads *services.UploadService) *StaticController {
	return &StaticController{uploads: uploads}
}

// ProductImage handles GET /product_images/{filename}, streaming the file
// from whichever storage disk is configured.
func (c *StaticController) ProductImage(cx *ctx.Context) {
	filename := services.SanitizeFilename(cx.Param("filename"))
	rc, err := c.uploads.Open(filename)
	if err != nil {
		http.NotFound(cx.W, cx.R)
		return
	}
	defer rc.Close()

	if ct := mime.TypeByExtension(path.Ext(filename)); ct != "" {
		cx.W.Header().Set("Content-Type", ct)
	}
	if _, err := io.Copy(cx.W, rc); err != nil {
		logger.WithCtx(cx.Context()).Error("image stream failed", "file", filename, "error", err)
	}
}

// SPA is the router fallback: any path that matched no API route serves
// the frontend bundle. Real files under the static dir are served as-is;
// everything else gets index.html so client-side routing works.
func (c *StaticController) SPA(cx *ctx.Context) {
	dir := config.StaticDir()
	clean := filepath.Clean(strings.TrimPrefix(cx.R.URL.Path, "/"))
	if clean == "." || strings.HasPrefix(clean, "..") {
		clean = "index.html"
	}

	full := filepath.Join(dir, clean)
	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		cx.File(full)
		return
	}
	cx.File(filepath.Join(dir, "index.html"))
}
