package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/billed/internal/application/routes"
	"github.com/jhoicas/billed/internal/domain"
)

func TestRedirectNavigator(t *testing.T) {
	nav := &redirectNavigator{}
	assert.NoError(t, nav.Navigate(routes.Bills))
	assert.Equal(t, routes.Bills, nav.target)

	err := nav.Navigate("/desconocida")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, routes.Bills, nav.target, "una ruta desconocida no cambia el destino")
}
