package order_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/cart"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrderLines() []models.CartLine {
	return []models.CartLine{
		{ProductID: 1, Name: "Croissant de Chocolate", Price: 3.99, Quantity: 2},
		{ProductID: 3, Name: "Pan de Masa Madre", Price: 5.99, Quantity: 1},
	}
}

func TestFormatWhatsAppMessage(t *testing.T) {

	t.Run("Includes Lines Totals And Customer Fields", func(t *testing.T) {
		lines := testOrderLines()
		payload, err := order.Build(lines, testCustomer())
		require.NoError(t, err)

		message := order.FormatWhatsAppMessage(payload, cart.Project(lines, 0.085))

		assert.Contains(t, message, "Nuevo pedido:")
		assert.Contains(t, message, "Croissant de Chocolate x2")
		assert.Contains(t, message, "Pan de Masa Madre x1")
		assert.Contains(t, message, "Subtotal: $13.97")
		assert.Contains(t, message, "Impuesto: $1.19")
		assert.Contains(t, message, "Total: $15.16")
		assert.Contains(t, message, "Cliente: María Pérez")
		assert.Contains(t, message, "Teléfono: 584121234567")
		assert.Contains(t, message, "Email: maria@example.com")
		assert.Contains(t, message, "Fecha de entrega: 2026-09-15")
		assert.Contains(t, message, "Nota: Sin azúcar en el pastel")
	})

	t.Run("Omits Empty Note", func(t *testing.T) {
		customer := testCustomer()
		customer.Note = ""

		lines := testOrderLines()
		payload, err := order.Build(lines, customer)
		require.NoError(t, err)

		message := order.FormatWhatsAppMessage(payload, cart.Project(lines, 0.085))

		assert.NotContains(t, message, "Nota:")
	})
}

func TestWhatsAppLink(t *testing.T) {

	t.Run("Builds Escaped Deep Link", func(t *testing.T) {
		link := order.WhatsAppLink("584121234567", "Nuevo pedido: 2 x Croissant & más")

		require.True(t, strings.HasPrefix(link, "https://wa.me/584121234567?text="))

		parsed, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "Nuevo pedido: 2 x Croissant & más", parsed.Query().Get("text"))
	})

	t.Run("Empty Without A Configured Number", func(t *testing.T) {
		assert.Empty(t, order.WhatsAppLink("", "anything"))
	})
}
