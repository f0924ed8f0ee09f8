// file: internals/helpers/upload_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"tutorhub_backend/internals/constants"
)

const (
	storageRoot   = "storage/public"
	maxImageWidth = 1600
	webpQuality   = 80
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SaveImage memvalidasi, mengompres (webp) dan menyimpan gambar upload
// ke disk lokal. Mengembalikan path relatif yang disimpan di DB.
func SaveImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > constants.MaxImageUploadBytes {
		return "", fmt.Errorf("ukuran gambar melebihi 2MB (%dKB)", fileHeader.Size/1024)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !constants.AllowedImageExtensions[ext] {
		return "", fmt.Errorf("format gambar tidak didukung: %s", ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("file bukan gambar yang valid: %w", err)
	}

	// Resize kalau terlalu lebar, biar storage hemat
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	relPath := filepath.Join(folder, generateUniqueFilename(fileHeader.Filename))
	fullPath := filepath.Join(storageRoot, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	if err := os.WriteFile(fullPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	return relPath, nil
}

func generateUniqueFilename(originalFilename string) string {
	base := strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename))
	safe := unsafeFilenameChars.ReplaceAllString(base, "_")
	return fmt.Sprintf("%s-%s-%s.webp", time.Now().Format("20060102"), uuid.New().String(), safe)
}
