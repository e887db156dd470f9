package payment

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// GatewayPayment is the gateway-agnostic view of a processed payment.
type GatewayPayment struct {
	ID                string
	Status            string
	ExternalReference string
}

// Gateway is the external payment collaborator: order creation and payment
// lookup. The booking engine only ever sees the resulting payment status.
type Gateway interface {
	CreateOrder(ctx context.Context, bookingID, title string, amount float64) (orderID, checkoutURL string, err error)
	PaymentByID(ctx context.Context, id string) (*GatewayPayment, error)
}

type MercadoPagoGateway struct {
	prefs    preference.Client
	payments mppayment.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPagoGateway{
		prefs:    preference.NewClient(cfg),
		payments: mppayment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateOrder(
	ctx context.Context,
	bookingID string,
	title string,
	amount float64,
) (string, string, error) {

	resp, err := g.prefs.Create(ctx, preference.Request{
		ExternalReference: bookingID,
		Items: []preference.ItemRequest{
			{
				ID:        bookingID,
				Title:     title,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("create preference: %w", err)
	}

	return resp.ID, resp.InitPoint, nil
}

func (g *MercadoPagoGateway) PaymentByID(ctx context.Context, id string) (*GatewayPayment, error) {
	numeric, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("payment id %q: %w", id, err)
	}

	resp, err := g.payments.Get(ctx, numeric)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &GatewayPayment{
		ID:                id,
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}

var _ Gateway = (*MercadoPagoGateway)(nil)
