package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ambassade_backend/internals/configs"
)

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeFilename retire tout sauf lettres, chiffres, point, tiret, underscore.
func SanitizeFilename(filename string) string {
	clean := filenameRe.ReplaceAllString(filename, "_")
	if clean == "" || clean == "." {
		clean = "fichier"
	}
	return clean
}

// GenerateUniqueFilename préfixe le nom nettoyé par un uuid court + timestamp.
func GenerateUniqueFilename(original string) string {
	base := SanitizeFilename(filepath.Base(original))
	return fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.NewString()[:8], base)
}

// SizeKB arrondit la taille en octets au KB supérieur.
func SizeKB(sizeBytes int64) int64 {
	if sizeBytes <= 0 {
		return 0
	}
	return (sizeBytes + 1023) / 1024
}

// SaveUploadedFile enregistre un fichier multipart sur le disque local
// sous UPLOAD_DIR/<folder>/ et renvoie le chemin stocké.
func SaveUploadedFile(c *fiber.Ctx, fh *multipart.FileHeader, folder string) (string, error) {
	dir := filepath.Join(configs.UploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("création du dossier d'upload : %w", err)
	}

	dest := filepath.Join(dir, GenerateUniqueFilename(fh.Filename))
	if err := c.SaveFile(fh, dest); err != nil {
		return "", fmt.Errorf("enregistrement du fichier : %w", err)
	}
	return dest, nil
}

// ContentTypeOf lit le Content-Type déclaré, avec repli sur l'extension.
func ContentTypeOf(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
