package storage

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestLocalDiskRoundTrip(t *testing.T) {
	d := &localDisk{root: t.TempDir()}

	if err := d.Put("product_images/1693411200_photo.jpg", []byte("jpeg-bytes")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if !d.Exists("product_images/1693411200_photo.jpg") {
		t.Fatal("expected file to exist after put")
	}

	data, err := d.Get("product_images/1693411200_photo.jpg")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(data, []byte("jpeg-bytes")) {
		t.Errorf("unexpected content: %q", data)
	}

	size, err := d.Size("product_images/1693411200_photo.jpg")
	if err != nil || size != int64(len("jpeg-bytes")) {
		t.Errorf("unexpected size %d, err %v", size, err)
	}
}

func TestLocalDiskStream(t *testing.T) {
	d := &localDisk{root: t.TempDir()}

	if err := d.PutStream("a/b.txt", strings.NewReader("stream")); err != nil {
		t.Fatalf("put stream: %v", err)
	}
	rc, err := d.GetStream("a/b.txt")
	if err != nil {
		t.Fatalf("get stream: %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "stream" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestLocalDiskDeleteMissingIsNil(t *testing.T) {
	d := &localDisk{root: t.TempDir()}
	if err := d.Delete("never-existed.png"); err != nil {
		t.Errorf("expected nil for missing file, got %v", err)
	}
}
