package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
	maxUploadSize = 10 << 20 // 10MB
	uploadsSubdir = "uploads"
)

// MediaStore saves uploaded files and resolves their public URLs. Paths are
// "<bucket>/<filename>" and opaque to callers.
type MediaStore interface {
	// Upload stores data under bucket and returns the storage path.
	// Images are resized and re-encoded; other files are stored as-is.
	Upload(bucket, originalName string, data []byte) (string, error)
	// PublicURL resolves a storage path to a URL the browser can fetch.
	PublicURL(path string) string
	// Download returns the raw bytes of a stored file.
	Download(path string) ([]byte, error)
	// Remove deletes a stored file. Missing files are not an error.
	Remove(path string) error
}

// diskMedia stores files under staticDir/uploads/<bucket>/ and serves them
// through the /public/ static route.
type diskMedia struct {
	staticDir string
}

func newDiskMedia(staticDir string) *diskMedia {
	return &diskMedia{staticDir: staticDir}
}

func (d *diskMedia) Upload(bucket, originalName string, data []byte) (string, error) {
	var filename string
	var payload []byte
	if strings.EqualFold(filepath.Ext(originalName), ".pdf") {
		filename = slugifyFilename(originalName) + ".pdf"
		payload = data
	} else {
		processed, err := processImage(data)
		if err != nil {
			return "", err
		}
		filename = slugifyFilename(originalName) + ".jpg"
		payload = processed
	}

	dir := filepath.Join(d.staticDir, uploadsSubdir, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	filename = ensureUniqueFilename(dir, filename)
	if err := os.WriteFile(filepath.Join(dir, filename), payload, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return bucket + "/" + filename, nil
}

func (d *diskMedia) PublicURL(path string) string {
	if path == "" {
		return ""
	}
	return "/public/" + uploadsSubdir + "/" + path
}

func (d *diskMedia) Download(path string) ([]byte, error) {
	clean := filepath.Clean(path)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid media path %q", path)
	}
	return os.ReadFile(filepath.Join(d.staticDir, uploadsSubdir, clean))
}

func (d *diskMedia) Remove(path string) error {
	clean := filepath.Clean(path)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid media path %q", path)
	}
	err := os.Remove(filepath.Join(d.staticDir, uploadsSubdir, clean))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// processImage decodes an image, resizes it to maxImageWidth when wider, and
// re-encodes it as JPEG.
func processImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// slugifyFilename converts a filename (without extension) to a URL-safe slug.
func slugifyFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(filepath.Base(name), ext)
	slug := Slugify(base)
	if slug == "" {
		slug = "upload"
	}
	return slug
}

// ensureUniqueFilename appends a counter while the filename exists in dir.
func ensureUniqueFilename(dir, filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	candidate := filename
	counter := 1
	for {
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
		counter++
		candidate = fmt.Sprintf("%s-%d%s", base, counter, ext)
	}
}

// mockMedia fabricates placeholder URLs without touching disk. Used in
// preview mode so uploads appear to work against the in-memory store.
type mockMedia struct{}

func (mockMedia) Upload(bucket, originalName string, data []byte) (string, error) {
	return bucket + "/" + slugifyFilename(originalName) + filepath.Ext(originalName), nil
}

func (mockMedia) PublicURL(path string) string {
	if path == "" {
		return ""
	}
	return "https://placeholder.example.com/storage/" + path
}

func (mockMedia) Download(path string) ([]byte, error) {
	return nil, fmt.Errorf("media download unavailable in preview mode")
}

func (mockMedia) Remove(path string) error { return nil }
