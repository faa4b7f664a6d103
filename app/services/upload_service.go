package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/ibomiri431-oss/metra-feer/config"
	"github.com/ibomiri431-oss/metra-feer/pkg/storage"
)

// UploadService stores product media on the configured storage disk and
// hands back the public URL path the SPA embeds.
type UploadService struct{}

func NewUploadService() *UploadService {
	return &UploadService{}
}

// Store writes one uploaded file under the upload directory and returns its
// URL path, e.g. /product_images/1693411200_photo.jpg.
func (s *UploadService) Store(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("upload: open: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d_%s", time.Now().Unix(), SanitizeFilename(fh.Filename))
	dir := config.UploadDir()
	if err := storage.PutStream(path.Join(dir, name), src); err != nil {
		return "", err
	}
	return "/" + dir + "/" + name, nil
}

// Open returns a reader for a previously uploaded file by bare filename.
func (s *UploadService) Open(filename string) (io.ReadCloser, error) {
	return storage.GetStream(path.Join(config.UploadDir(), filename))
}

// Exists reports whether an uploaded file is present on the disk.
func (s *UploadService) Exists(filename string) bool {
	return storage.Exists(path.Join(config.UploadDir(), filename))
}

// SanitizeFilename strips everything except unicode letters, digits, dots
// and underscores, which also removes path separators. An empty result
// falls back to "file".
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" || strings.Trim(out, ".") == "" {
		return "file"
	}
	return out
}
