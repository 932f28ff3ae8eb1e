package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // decodificadores para validar el logo
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

var errLogoFormat = errors.New("pdf: formato de logo no soportado (png, jpg)")

// logoAsset imagen del logo ya leída y validada.
type logoAsset struct {
	data []byte
	ext  extension.Type
}

// loadLogo lee y valida el logo. Cualquier error implica usar el texto de respaldo.
func loadLogo(path string) (*logoAsset, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("pdf: logo no configurado: %w", os.ErrNotExist)
	}
	var ext extension.Type
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		ext = extension.Png
	case ".jpg":
		ext = extension.Jpg
	case ".jpeg":
		ext = extension.Jpeg
	default:
		return nil, errLogoFormat
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pdf: leer logo: %w", err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("pdf: logo inválido: %w", err)
	}
	return &logoAsset{data: data, ext: ext}, nil
}
