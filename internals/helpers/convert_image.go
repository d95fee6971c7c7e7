package helper

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"ambassade_backend/internals/configs"
)

const thumbnailWidth = 320

// SaveImageAsWebp décode l'image uploadée, la réencode en webp (qualité 85)
// et écrit aussi une miniature <nom>_thumb.webp. Renvoie (chemin, chemin miniature).
func SaveImageAsWebp(fh *multipart.FileHeader, folder string) (string, string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("ouverture de l'image : %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("image illisible : %w", err)
	}

	dir := filepath.Join(configs.UploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("création du dossier d'upload : %w", err)
	}

	name := GenerateUniqueFilename(fh.Filename)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + ".webp"
	dest := filepath.Join(dir, name)

	if err := writeWebp(dest, img); err != nil {
		return "", "", err
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	thumbDest := strings.TrimSuffix(dest, ".webp") + "_thumb.webp"
	if err := writeWebp(thumbDest, thumb); err != nil {
		return "", "", err
	}

	return dest, thumbDest, nil
}

func writeWebp(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("écriture webp : %w", err)
	}
	defer f.Close()

	if err := webp.Encode(f, img, &webp.Options{Quality: 85}); err != nil {
		return fmt.Errorf("encodage webp : %w", err)
	}
	return nil
}
