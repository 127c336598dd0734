package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceiptContentType(t *testing.T) {
	cases := map[string]string{
		"facture.png":   "image/png",
		"FACTURE.PNG":   "image/png",
		"photo.jpg":     "image/jpeg",
		"photo.JPEG":    "image/jpeg",
		"page.html":     "application/octet-stream",
		"image.svg":     "application/octet-stream",
		"sin-extensión": "application/octet-stream",
	}
	for name, want := range cases {
		assert.Equal(t, want, ReceiptContentType(name), name)
	}
}
