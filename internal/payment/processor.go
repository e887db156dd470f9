package payment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/models"
)

// ErrGatewayDisabled is returned when no payment gateway is configured.
var ErrGatewayDisabled = errors.New("payment gateway not configured")

// Processor owns the payment side of a booking: order creation before
// checkout, and status reconciliation from gateway webhooks. Booking status
// coupling: an approved payment confirms a pending booking, a refund marks
// the payment refunded on an already-cancelled one.
type Processor struct {
	db       *gorm.DB
	bookings domain.BookingStore
	gateway  Gateway
	logger   *zap.Logger
}

func NewProcessor(db *gorm.DB, bookings domain.BookingStore, gateway Gateway, logger *zap.Logger) *Processor {
	return &Processor{db: db, bookings: bookings, gateway: gateway, logger: logger}
}

// CreateOrder opens a gateway order for the booking's total amount and
// records the pending Payment row. Returns the checkout URL.
func (p *Processor) CreateOrder(ctx context.Context, bookingID string) (*models.Payment, string, error) {
	if p.gateway == nil {
		return nil, "", ErrGatewayDisabled
	}

	b, err := p.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}

	if domain.Status(b.Status) != domain.StatusPending {
		return nil, "", domain.ErrInvalidRequest
	}

	orderID, checkoutURL, err := p.gateway.CreateOrder(ctx, b.ID, "Appointment booking", b.TotalAmount)
	if err != nil {
		return nil, "", fmt.Errorf("gateway order: %w", err)
	}

	pay := models.Payment{
		BookingID: b.ID,
		UserID:    b.UserID,
		Amount:    b.TotalAmount,
		OrderID:   orderID,
		Status:    string(domain.PaymentPending),
	}
	if err := p.db.WithContext(ctx).Create(&pay).Error; err != nil {
		return nil, "", err
	}

	b.PaymentID = pay.ID
	if err := p.bookings.Save(ctx, b); err != nil {
		return nil, "", err
	}

	return &pay, checkoutURL, nil
}

// HandleNotification reconciles a gateway webhook: looks the payment up at
// the gateway and applies its status to the Payment row and the booking.
func (p *Processor) HandleNotification(ctx context.Context, gatewayPaymentID string) error {
	if p.gateway == nil {
		return ErrGatewayDisabled
	}

	gp, err := p.gateway.PaymentByID(ctx, gatewayPaymentID)
	if err != nil {
		return err
	}

	b, err := p.bookings.FindByID(ctx, gp.ExternalReference)
	if err != nil {
		return err
	}

	var pay models.Payment
	if err := p.db.WithContext(ctx).
		Where("booking_id = ?", b.ID).
		First(&pay).Error; err != nil {
		return err
	}

	switch gp.Status {
	case "approved":
		pay.Status = string(domain.PaymentCompleted)
		b.PaymentStatus = string(domain.PaymentCompleted)
		// Payment confirms a still-pending booking.
		if domain.Status(b.Status) == domain.StatusPending {
			b.Status = string(domain.StatusConfirmed)
		}
	case "rejected", "cancelled":
		pay.Status = string(domain.PaymentFailed)
		pay.FailureReason = gp.Status
		b.PaymentStatus = string(domain.PaymentFailed)
	case "refunded":
		pay.Status = string(domain.PaymentRefunded)
		b.PaymentStatus = string(domain.PaymentRefunded)
	default:
		p.logger.Info("ignoring gateway payment status",
			zap.String("status", gp.Status),
			zap.String("booking_id", b.ID),
		)
		return nil
	}

	pay.GatewayPaymentID = gp.ID
	if err := p.db.WithContext(ctx).Save(&pay).Error; err != nil {
		return err
	}
	if err := p.bookings.Save(ctx, b); err != nil {
		return err
	}

	p.logger.Info("payment reconciled",
		zap.String("booking_id", b.ID),
		zap.String("payment_status", pay.Status),
	)
	return nil
}
