package go_nvp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/fields"
	"github.com/stremovskyy/go-nvp/internal/httpclient"
	"github.com/stremovskyy/go-nvp/log"
	"github.com/stremovskyy/go-nvp/request"
	"github.com/stremovskyy/go-nvp/response"
	"github.com/stremovskyy/recorder"
)

// MaxParallelPayments is the number of payments one checkout can carry.
const MaxParallelPayments = 10

// Client is the main PayPal NVP SDK client.
//
// Every call prepends the configured profile, appends VERSION and posts the
// body to the environment's NVP endpoint. PayPal business failures
// (ACK=Failure) are not returned as errors; inspect the response or call
// Err() on it.
type Client struct {
	cfg       config
	transport Transport

	expressCheckout *ExpressCheckoutService
	transactions    *TransactionService
	recurring       *RecurringService
}

func NewClient(opts ...Option) (PayPal, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	c := &Client{cfg: cfg, transport: cfg.transport}
	if c.transport == nil {
		c.transport = httpclient.New(cfg.httpClient, cfg.logger, cfg.recorder, cfg.logBodies)
	}

	c.expressCheckout = &ExpressCheckoutService{c: c}
	c.transactions = &TransactionService{c: c}
	c.recurring = &RecurringService{c: c}
	if cfg.logLevel != nil {
		c.SetLogLevel(*cfg.logLevel)
	}
	return c, nil
}

// NewDefaultClient is a convenience wrapper around NewClient() with default configuration.
//
// A profile still has to be set before the first call.
func NewDefaultClient() (PayPal, error) {
	return NewClient()
}

// NewClientWithRecorder attaches a recorder before applying opts.
func NewClientWithRecorder(rec recorder.Recorder, opts ...Option) (PayPal, error) {
	opts = append([]Option{WithRecorder(rec)}, opts...)
	return NewClient(opts...)
}

func (c *Client) ExpressCheckout() *ExpressCheckoutService { return c.expressCheckout }
func (c *Client) Transactions() *TransactionService        { return c.transactions }
func (c *Client) Recurring() *RecurringService             { return c.recurring }

// SetLogLevel updates SDK log level when current logger supports it.
func (c *Client) SetLogLevel(level log.Level) {
	if c == nil || c.cfg.logger == nil {
		return
	}
	if l, ok := c.cfg.logger.(interface{ SetLevel(log.Level) }); ok {
		l.SetLevel(level)
	}
}

// EndpointURL is the URL requests are posted to.
func (c *Client) EndpointURL() string {
	if c == nil {
		return ""
	}
	if c.cfg.endpointURL != "" {
		return c.cfg.endpointURL
	}
	apiSignature := c.cfg.profile == nil || c.cfg.profile.IsAPISignature()
	return c.cfg.environment.EndpointURL(apiSignature)
}

// RedirectURL is where the buyer approves token, for the configured
// environment.
func (c *Client) RedirectURL(token string) string {
	if c == nil {
		return ""
	}
	return c.cfg.environment.RedirectURL(token)
}

// Encode returns the body that would be posted for req: profile pairs, the
// request pairs and VERSION.
func (c *Client) Encode(req request.Request) (string, error) {
	if c == nil {
		return "", errors.New("client is nil")
	}
	if isNilRequest(req) {
		return "", nilRequestError()
	}
	if err := c.validateProfile(); err != nil {
		return "", err
	}
	return c.encode(req), nil
}

func (c *Client) encode(req request.Request) string {
	body := c.cfg.profile.NVP()
	body.Merge(req.NVPRequest())
	body.Set(consts.KeyVersion, c.cfg.version)
	return body.Encode()
}

// Do sends req without request-specific validation and returns the parsed
// envelope.
func (c *Client) Do(ctx context.Context, req request.Request, runOpts ...RunOption) (*response.Envelope, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	if isNilRequest(req) {
		return nil, nilRequestError()
	}
	return c.call(ctx, req, runOpts)
}

// call returns (nil, nil) on a dry run.
func (c *Client) call(ctx context.Context, req request.Request, runOpts []RunOption) (*response.Envelope, error) {
	if err := c.validateProfile(); err != nil {
		return nil, err
	}

	full := c.EndpointURL()
	body := c.encode(req)
	if shouldDryRun(runOpts, http.MethodPost, full, body) {
		return nil, nil
	}

	raw, err := c.transport.Post(ctx, full, body)
	if err != nil {
		return nil, wrapAPIError(err)
	}

	env := response.Parse(raw)
	if err := env.Err(); err != nil {
		c.cfg.logger.Warnf("[PayPal NVP] %s: %v", req.Method(), err)
	} else {
		c.cfg.logger.Debugf("[PayPal NVP] %s: ack=%s correlation_id=%s", req.Method(), env.Ack(), env.CorrelationID())
	}
	return env, nil
}

func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var hs *httpclient.HTTPStatusError
	if errors.As(err, &hs) {
		return &APIError{StatusCode: hs.StatusCode, Body: hs.Body}
	}
	return err
}

func nilRequestError() error {
	return &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
}

// isNilRequest catches typed nil pointers stored in the interface.
func isNilRequest(req request.Request) bool {
	switch r := req.(type) {
	case nil:
		return true
	case *request.SetExpressCheckout:
		return r == nil
	case *request.GetExpressCheckoutDetails:
		return r == nil
	case *request.DoExpressCheckoutPayment:
		return r == nil
	case *request.DoDirectPayment:
		return r == nil
	case *request.RefundTransaction:
		return r == nil
	case *request.CreateRecurringPaymentsProfile:
		return r == nil
	case *request.GetRecurringPaymentsProfileDetails:
		return r == nil
	case *request.ManageRecurringPaymentsProfileStatus:
		return r == nil
	case *request.UpdateRecurringPaymentsProfile:
		return r == nil
	}
	return false
}

// =========================
// Express Checkout
// =========================

type ExpressCheckoutService struct{ c *Client }

// Set starts a checkout and returns the token the buyer is redirected with.
func (s *ExpressCheckoutService) Set(ctx context.Context, req *request.SetExpressCheckout, runOpts ...RunOption) (*response.SetExpressCheckout, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if err := validateSetExpressCheckout(req); err != nil {
		return nil, err
	}
	env, err := s.c.call(ctx, req, runOpts)
	if err != nil || env == nil {
		return nil, err
	}
	return response.NewSetExpressCheckout(env), nil
}

// GetDetails returns what the buyer approved for a token.
func (s *ExpressCheckoutService) GetDetails(ctx context.Context, req *request.GetExpressCheckoutDetails, runOpts ...RunOption) (*response.GetExpressCheckoutDetails, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if err := validateToken(req.Token()); err != nil {
		return nil, err
	}
	env, err := s.c.call(ctx, req, runOpts)
	if err != nil || env == nil {
		return nil, err
	}
	return response.NewGetExpressCheckoutDetails(env), nil
}

// Do completes the checkout.
func (s *ExpressCheckoutService) Do(ctx context.Context, req *request.DoExpressCheckoutPayment, runOpts ...RunOption) (*response.DoExpressCheckoutPayment, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if err := validateDoExpressCheckoutPayment(req); err != nil {
		return nil, err
	}
	env, err := s.c.call(ctx, req, runOpts)
	if err != nil || env == nil {
		return nil, err
	}
	return response.NewDoExpressCheckoutPayment(env), nil
}

// =========================
// Direct payments and refunds
// =========================

type TransactionService struct{ c *Client }

// DoDirectPayment charges a credit card.
func (s *TransactionService) DoDirectPayment(ctx context.Context, req *request.DoDirectPayment, runOpts ...RunOption) (*response.DoDirectPayment, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if err := validateDoDirectPayment(req); err != nil {
		return nil, err
	}
	env, err := s.c.call(ctx, req, runOpts)
	if err != nil || env == nil {
		return nil, err
	}
	return response.NewDoDirectPayment(env), nil
}

// Refund refunds a transaction in full or in part.
func (s *TransactionService) Refund(ctx context.Context, req *request.RefundTransaction, runOpts ...RunOption) (*response.RefundTransaction, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if strings.TrimSpace(req.TransactionID()) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "transaction_id", Message: "is required"}}}
	}
	env, err := s.c.call(ctx, req, runOpts)
	if err != nil || env == nil {
		return nil, err
	}
	return response.NewRefundTransaction(env), nil
}

// =========================
// Recurring payments
// =========================

type RecurringService struct{ c *Client }

// CreateProfile creates a recurring payments profile.
func (s *RecurringService) CreateProfile(ctx context.Context, req *request.CreateRecurringPaymentsProfile, runOpts ...RunOption) (*response.CreateRecurringPaymentsProfile, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if err := validateCreateRecurringPaymentsProfile(req); err != nil {
		return nil, err
	}
	env, err := s.c.call(ctx, req, runOpts)
	if err != nil || env == nil {
		return nil, err
	}
	return response.NewCreateRecurringPaymentsProfile(env), nil
}

// GetProfileDetails returns a profile's schedule, billing and payer data.
func (s *RecurringService) GetProfileDetails(ctx context.Context, req *request.GetRecurringPaymentsProfileDetails, runOpts ...RunOption) (*response.GetRecurringPaymentsProfileDetails, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if err := validateProfileID(req.ProfileID()); err != nil {
		return nil, err
	}
	env, err := s.c.call(ctx, req, runOpts)
	if err != nil || env == nil {
		return nil, err
	}
	return response.NewGetRecurringPaymentsProfileDetails(env), nil
}

// ManageProfileStatus cancels, suspends or reactivates a profile.
func (s *RecurringService) ManageProfileStatus(ctx context.Context, req *request.ManageRecurringPaymentsProfileStatus, runOpts ...RunOption) (*response.ManageRecurringPaymentsProfileStatus, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if err := validateManageProfileStatus(req); err != nil {
		return nil, err
	}
	env, err := s.c.call(ctx, req, runOpts)
	if err != nil || env == nil {
		return nil, err
	}
	return response.NewManageRecurringPaymentsProfileStatus(env), nil
}

// UpdateProfile changes the values set on req.
func (s *RecurringService) UpdateProfile(ctx context.Context, req *request.UpdateRecurringPaymentsProfile, runOpts ...RunOption) (*response.UpdateRecurringPaymentsProfile, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, nilRequestError()
	}
	if err := validateProfileID(req.ProfileID()); err != nil {
		return nil, err
	}
	env, err := s.c.call(ctx, req, runOpts)
	if err != nil || env == nil {
		return nil, err
	}
	return response.NewUpdateRecurringPaymentsProfile(env), nil
}

// =========================
// Validation
// =========================

func (c *Client) validateProfile() error {
	if c.cfg.profile == nil {
		return &ValidationError{Fields: []FieldError{{Field: "profile", Message: "is not configured; use WithProfile(...)"}}}
	}
	if v, ok := c.cfg.profile.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Fields: []FieldError{{Field: "profile", Message: err.Error()}}}
		}
	}
	return nil
}

func validateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return &ValidationError{Fields: []FieldError{{Field: "token", Message: "is required"}}}
	}
	return nil
}

func validateProfileID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Fields: []FieldError{{Field: "profile_id", Message: "is required"}}}
	}
	return nil
}

func validateSetExpressCheckout(req *request.SetExpressCheckout) error {
	ve := &ValidationError{}
	if req.ReturnURL() == "" {
		ve.Add("return_url", "is required")
	}
	if req.CancelURL() == "" {
		ve.Add("cancel_url", "is required")
	}
	validatePayments(ve, req.Payments())
	return ve.orNil()
}

func validateDoExpressCheckoutPayment(req *request.DoExpressCheckoutPayment) error {
	ve := &ValidationError{}
	if req.Token() == "" {
		ve.Add("token", "is required")
	}
	if req.PayerID() == "" {
		ve.Add("payer_id", "is required")
	}
	validatePayments(ve, req.Payments())
	return ve.orNil()
}

func validateDoDirectPayment(req *request.DoDirectPayment) error {
	ve := &ValidationError{}
	if req.IPAddress() == "" {
		ve.Add("ip_address", "is required")
	}
	if card := req.CreditCard(); card == nil {
		ve.Add("credit_card", "is required")
	} else if card.Number() == "" {
		ve.Add("credit_card.acct", "is required")
	}
	if p := req.Payment(); p == nil {
		ve.Add("payment", "is required")
	} else {
		validatePaymentItems(ve, "payment", p)
	}
	return ve.orNil()
}

func validateCreateRecurringPaymentsProfile(req *request.CreateRecurringPaymentsProfile) error {
	ve := &ValidationError{}
	if req.Profile() == nil {
		ve.Add("profile", "is required")
	}
	if req.Schedule() == nil {
		ve.Add("schedule", "is required")
	}
	if req.BillingPeriod() == nil {
		ve.Add("billing_period", "is required")
	}
	if req.Token() == "" && req.CreditCard() == nil {
		ve.Add("token", "or credit card is required")
	}
	return ve.orNil()
}

func validateManageProfileStatus(req *request.ManageRecurringPaymentsProfileStatus) error {
	ve := &ValidationError{}
	if strings.TrimSpace(req.ProfileID()) == "" {
		ve.Add("profile_id", "is required")
	}
	if _, ok := consts.ParseProfileAction(req.Action()); !ok {
		ve.Add("action", fmt.Sprintf("unknown action %q", req.Action()))
	}
	return ve.orNil()
}

func validatePayments(ve *ValidationError, payments []*fields.Payment) {
	n := 0
	for i, p := range payments {
		if p == nil {
			continue
		}
		n++
		validatePaymentItems(ve, fmt.Sprintf("payments[%d]", i), p)
	}
	switch {
	case n == 0:
		ve.Add("payments", "at least one payment is required")
	case n > MaxParallelPayments:
		ve.Add("payments", fmt.Sprintf("at most %d parallel payments are allowed, got %d", MaxParallelPayments, n))
	}
}

// validatePaymentItems rejects item amounts that cannot be summed into the
// payment totals.
func validatePaymentItems(ve *ValidationError, field string, p *fields.Payment) {
	if !p.ComputesTotals() {
		return
	}
	for j, it := range p.Items() {
		pi, ok := it.(*fields.PaymentItem)
		if !ok {
			continue
		}
		if _, err := decimal.NewFromString(pi.Amount()); err != nil {
			ve.Add(fmt.Sprintf("%s.items[%d].amount", field, j), fmt.Sprintf("%q is not a decimal amount", pi.Amount()))
		}
		if tax := pi.TaxAmount(); tax != "" {
			if _, err := decimal.NewFromString(tax); err != nil {
				ve.Add(fmt.Sprintf("%s.items[%d].tax_amount", field, j), fmt.Sprintf("%q is not a decimal amount", tax))
			}
		}
	}
}
