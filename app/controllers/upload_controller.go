package controllers

import (
	"net/http"

	"github.com/ibomiri431-oss/metra-feer/app/services"
	"github.com/ibomiri431-oss/metra-feer/pkg/ctx"
	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
)

// maxUploadMemory caps the multipart parse buffer; larger files spill to
// temp files.
const maxUploadMemory = 32 << 20

type UploadController struct {
	service *services.UploadService
}

func NewUploadController(service *services.UploadService) *UploadController {
	return &UploadController{service: service}
}

// Upload handles POST /api/upload. Accepts a multipart batch under the
// "files" field and responds with {"paths": [...]}. Entries with an empty
// filename are skipped without a per-file error.
func (c *UploadController) Upload(cx *ctx.Context) {
	if err := cx.R.ParseMultipartForm(maxUploadMemory); err != nil {
		cx.Error(http.StatusBadRequest, "Dosya bulunamadı")
		return
	}

	files := cx.R.MultipartForm.File["files"]
	if len(files) == 0 {
		cx.Error(http.StatusBadRequest, "Dosya bulunamadı")
		return
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Filename == "" {
			continue
		}
		p, err := c.service.Store(fh)
		if err != nil {
			logger.WithCtx(cx.Context()).Error("upload failed", "file", fh.Filename, "error", err)
			cx.Error(http.StatusInternalServerError, "Sunucu hatası")
			return
		}
		paths = append(paths, p)
	}
	cx.OK(map[string][]string{"paths": paths})
}
