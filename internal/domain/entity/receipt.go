package entity

import (
	"path/filepath"
	"strings"
	"time"
)

// Receipt justificante (imagen) asociado a una nota de gastos.
type Receipt struct {
	Key         string
	FileName    string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// ReceiptContentType tipo MIME del justificante según su extensión.
// El Content-Type que declara el cliente no se usa.
func ReceiptContentType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	return "application/octet-stream"
}
