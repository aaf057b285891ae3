package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/api"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/cart"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/config"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/errors"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/pkg/sendgrid"
)

// Orders must be placed at least this far ahead.
const minDeliveryLeadDays = 2

// Service turns the current cart into an order: builds the payload, submits
// it upstream (a single best-effort attempt, no automatic retry) and, only
// after a confirmed placement, clears the cart. A failed submission leaves
// the cart untouched so the user can retry.
type Service struct {
	cart   *cart.Store
	client *api.Client
	email  sendgrid.EmailService

	appName        string
	taxRate        float64
	whatsAppNumber string
	submitUpstream bool
	notifications  bool
}

func NewService(cartStore *cart.Store, client *api.Client, email sendgrid.EmailService, cfg *config.Config) *Service {
	return &Service{
		cart:           cartStore,
		client:         client,
		email:          email,
		appName:        cfg.App.Name,
		taxRate:        cfg.App.TaxRate,
		whatsAppNumber: cfg.WhatsApp.Number,
		submitUpstream: cfg.Features.APIIntegration && client != nil,
		notifications:  cfg.Features.Notifications,
	}
}

func (s *Service) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResult, error) {

	if err := s.checkDeliveryDate(req.DeliveryDate); err != nil {
		return nil, err
	}

	lines := s.cart.Lines()

	payload, err := Build(lines, req)
	if err != nil {
		return nil, err
	}

	summary := cart.Project(lines, s.taxRate)

	result := &models.CheckoutResult{
		Total:        summary.Total,
		WhatsAppLink: WhatsAppLink(s.whatsAppNumber, FormatWhatsAppMessage(payload, summary)),
	}

	if s.submitUpstream {
		record, err := s.client.CreateOrder(ctx, payload)
		if err != nil {
			// Cart state is preserved; the user retries manually.
			return nil, errors.OrderSubmissionError("Failed to submit the order").WithError(err)
		}

		result.OrderID = record.ID
		result.Submitted = true
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order is already placed; a stale persisted cart is the lesser
		// problem. Report and move on.
		slog.Warn("Order placed but cart could not be cleared", slog.String("error", err.Error()))
	}

	s.sendConfirmation(ctx, payload, summary)

	slog.Info("Order placed",
		slog.Bool("submitted_upstream", result.Submitted),
		slog.Float64("total", result.Total),
		slog.Int("items", summary.TotalItems))

	return result, nil
}

func (s *Service) checkDeliveryDate(value string) error {

	chosen, err := time.Parse("2006-01-02", value)
	if err != nil {
		return errors.ValidationError("Delivery date must be a valid date (YYYY-MM-DD)")
	}

	now := time.Now()
	min := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, minDeliveryLeadDays)

	if chosen.Before(min) {
		return errors.ValidationError(fmt.Sprintf("Delivery date must be at least %d days from today", minDeliveryLeadDays))
	}

	return nil
}

// sendConfirmation emails the order summary. Best effort: a failed email
// never fails a placed order.
func (s *Service) sendConfirmation(ctx context.Context, payload *models.OrderPayload, summary cart.Summary) {

	if !s.notifications || s.email == nil {
		return
	}

	subject := fmt.Sprintf("%s: order confirmation", s.appName)
	content := fmt.Sprintf("Hi %s,\n\nWe received your order for delivery on %s.\n\n%s\nThank you!\n%s\n",
		payload.CustomerName, payload.DeliveryDate, FormatWhatsAppMessage(payload, summary), s.appName)

	if err := s.email.Send(ctx, payload.Email, subject, content); err != nil {
		slog.Warn("Failed to send order confirmation email",
			slog.String("to", payload.Email),
			slog.String("error", err.Error()))
	}
}
