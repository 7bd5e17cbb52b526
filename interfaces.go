package go_nvp

import (
	"context"

	"github.com/stremovskyy/go-nvp/log"
	"github.com/stremovskyy/go-nvp/request"
	"github.com/stremovskyy/go-nvp/response"
)

// PayPal is the main SDK interface.
type PayPal interface {
	ExpressCheckout() *ExpressCheckoutService
	Transactions() *TransactionService
	Recurring() *RecurringService

	// Do sends any request and returns the parsed envelope.
	Do(ctx context.Context, req request.Request, runOpts ...RunOption) (*response.Envelope, error)
	// Encode returns the body Do would send for req.
	Encode(req request.Request) (string, error)
	EndpointURL() string
	RedirectURL(token string) string

	SetLogLevel(level log.Level)
}

// Transport sends an encoded NVP body and returns the raw response body.
type Transport interface {
	Post(ctx context.Context, url string, body string) (string, error)
}

var _ PayPal = (*Client)(nil)
