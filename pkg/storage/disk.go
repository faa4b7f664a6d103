// Package storage provides the filesystem abstraction behind product uploads.
//
// Two drivers are available:
//   - "local": local filesystem (default; uploads land next to the DB file)
//   - "s3":    S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Boot once at startup, then use the default-disk helpers:
//
//	storage.Connect()
//	storage.Put("product_images/169_photo.jpg", data)
//	rc, _ := storage.GetStream("product_images/169_photo.jpg")
package storage

import "io"

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the file. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Size returns the byte size of the file.
	Size(path string) (int64, error)

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error
}
