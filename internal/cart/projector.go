package cart

import (
	"math"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
)

// LineView is a cart line with its display total.
type LineView struct {
	models.CartLine
	Total float64 `json:"total"`
}

// Summary is the presentational projection of the cart: line totals,
// subtotal, tax and grand total, all rounded to 2 decimals at this boundary.
type Summary struct {
	Lines      []LineView `json:"lines"`
	Subtotal   float64    `json:"subtotal"`
	Tax        float64    `json:"tax"`
	Total      float64    `json:"total"`
	TotalItems int        `json:"total_items"`
}

// Project derives the summary from the cart lines. Pure: same lines and rate
// always yield the same summary, with no side effects.
//
// The subtotal is accumulated unrounded and rounded only for display, so
// rounding error does not compound across lines. Prices come from the lines'
// denormalized snapshots, so a line whose product has left the catalog still
// projects correctly.
func Project(lines []models.CartLine, taxRate float64) Summary {

	views := make([]LineView, 0, len(lines))

	var subtotal float64
	totalItems := 0

	for _, line := range lines {
		lineTotal := line.Price * float64(line.Quantity)
		subtotal += lineTotal
		totalItems += line.Quantity

		views = append(views, LineView{CartLine: line, Total: round2(lineTotal)})
	}

	tax := subtotal * taxRate

	return Summary{
		Lines:      views,
		Subtotal:   round2(subtotal),
		Tax:        round2(tax),
		Total:      round2(subtotal + tax),
		TotalItems: totalItems,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
