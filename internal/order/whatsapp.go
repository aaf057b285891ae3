package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/cart"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
)

// FormatWhatsAppMessage renders the order as the text handed to the manual
// WhatsApp confirmation channel: every cart line with its quantity and total,
// the projected totals, and the customer fields.
func FormatWhatsAppMessage(payload *models.OrderPayload, summary cart.Summary) string {

	var b strings.Builder

	b.WriteString("Nuevo pedido:\n\n")

	for _, line := range summary.Lines {
		fmt.Fprintf(&b, "- %s x%d: $%.2f\n", line.Name, line.Quantity, line.Total)
	}

	fmt.Fprintf(&b, "\nSubtotal: $%.2f\n", summary.Subtotal)
	fmt.Fprintf(&b, "Impuesto: $%.2f\n", summary.Tax)
	fmt.Fprintf(&b, "Total: $%.2f\n\n", summary.Total)

	fmt.Fprintf(&b, "Cliente: %s\n", payload.CustomerName)
	fmt.Fprintf(&b, "Teléfono: %s\n", payload.Phone)
	fmt.Fprintf(&b, "Email: %s\n", payload.Email)
	fmt.Fprintf(&b, "Fecha de entrega: %s\n", payload.DeliveryDate)

	if payload.Note != "" {
		fmt.Fprintf(&b, "Nota: %s\n", payload.Note)
	}

	return b.String()
}

// WhatsAppLink builds the wa.me deep link for the shop number. Empty when no
// number is configured.
func WhatsAppLink(number string, message string) string {

	if number == "" {
		return ""
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
