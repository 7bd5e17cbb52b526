package fields

import "github.com/stremovskyy/go-nvp/nvp"

var payerSchema = nvp.NewSchema("EMAIL", "FIRSTNAME", "LASTNAME")

// Payer is the card holder of a direct payment.
type Payer struct{ group }

func NewPayer(firstName, lastName string) *Payer {
	p := &Payer{newGroup(payerSchema, nil)}
	p.set("FIRSTNAME", firstName)
	p.set("LASTNAME", lastName)
	return p
}

func PayerFromNVP(v *nvp.Values) *Payer {
	return &Payer{newGroup(payerSchema, v)}
}

func (p *Payer) Email() string         { return p.get("EMAIL") }
func (p *Payer) SetEmail(email string) { p.set("EMAIL", email) }
func (p *Payer) FirstName() string     { return p.get("FIRSTNAME") }
func (p *Payer) LastName() string      { return p.get("LASTNAME") }

var payerNameSchema = nvp.NewSchema("SALUTATION", "FIRSTNAME", "MIDDLENAME", "LASTNAME", "SUFFIX")

// PayerName is the full name of a payer.
type PayerName struct{ group }

func NewPayerName(firstName, lastName string) *PayerName {
	p := &PayerName{newGroup(payerNameSchema, nil)}
	p.set("FIRSTNAME", firstName)
	p.set("LASTNAME", lastName)
	return p
}

func PayerNameFromNVP(v *nvp.Values) *PayerName {
	return &PayerName{newGroup(payerNameSchema, v)}
}

func (p *PayerName) Salutation() string        { return p.get("SALUTATION") }
func (p *PayerName) SetSalutation(s string)    { p.set("SALUTATION", s) }
func (p *PayerName) FirstName() string         { return p.get("FIRSTNAME") }
func (p *PayerName) MiddleName() string        { return p.get("MIDDLENAME") }
func (p *PayerName) SetMiddleName(name string) { p.set("MIDDLENAME", name) }
func (p *PayerName) LastName() string          { return p.get("LASTNAME") }
func (p *PayerName) Suffix() string            { return p.get("SUFFIX") }
func (p *PayerName) SetSuffix(s string)        { p.set("SUFFIX", s) }

var payerInformationSchema = nvp.NewSchema("EMAIL", "PAYERID", "PAYERSTATUS", "COUNTRYCODE", "BUSINESS")

// PayerInformation describes the PayPal account of the buyer.
type PayerInformation struct{ group }

func NewPayerInformation() *PayerInformation {
	return &PayerInformation{newGroup(payerInformationSchema, nil)}
}

func PayerInformationFromNVP(v *nvp.Values) *PayerInformation {
	return &PayerInformation{newGroup(payerInformationSchema, v)}
}

func (p *PayerInformation) Email() string               { return p.get("EMAIL") }
func (p *PayerInformation) SetEmail(email string)       { p.set("EMAIL", email) }
func (p *PayerInformation) PayerID() string             { return p.get("PAYERID") }
func (p *PayerInformation) SetPayerID(id string)        { p.set("PAYERID", id) }
func (p *PayerInformation) PayerStatus() string         { return p.get("PAYERSTATUS") }
func (p *PayerInformation) SetPayerStatus(s string)     { p.set("PAYERSTATUS", s) }
func (p *PayerInformation) CountryCode() string         { return p.get("COUNTRYCODE") }
func (p *PayerInformation) SetCountryCode(code string)  { p.set("COUNTRYCODE", code) }
func (p *PayerInformation) BusinessName() string        { return p.get("BUSINESS") }
func (p *PayerInformation) SetBusinessName(name string) { p.set("BUSINESS", name) }

var buyerSchema = nvp.NewSchema("BUYERID", "BUYERUSERNAME", "BUYERREGISTRATIONDATE")

// Buyer identifies the buyer on the merchant's marketplace.
type Buyer struct{ group }

func NewBuyer() *Buyer {
	return &Buyer{newGroup(buyerSchema, nil)}
}

func (b *Buyer) SetID(id string)                 { b.set("BUYERID", id) }
func (b *Buyer) ID() string                      { return b.get("BUYERID") }
func (b *Buyer) SetUsername(username string)     { b.set("BUYERUSERNAME", username) }
func (b *Buyer) Username() string                { return b.get("BUYERUSERNAME") }
func (b *Buyer) SetRegistrationDate(date string) { b.set("BUYERREGISTRATIONDATE", date) }
func (b *Buyer) RegistrationDate() string        { return b.get("BUYERREGISTRATIONDATE") }

var sellerSchema = nvp.NewSchema("SELLERID", "SELLERPAYPALACCOUNTID")

// Seller is the receiver of a parallel payment.
type Seller struct{ group }

func NewSeller() *Seller {
	return &Seller{newGroup(sellerSchema, nil)}
}

func SellerFromNVP(v *nvp.Values) *Seller {
	return &Seller{newGroup(sellerSchema, v)}
}

func (s *Seller) SetID(id string)              { s.set("SELLERID", id) }
func (s *Seller) ID() string                   { return s.get("SELLERID") }
func (s *Seller) SetPayPalAccountID(id string) { s.set("SELLERPAYPALACCOUNTID", id) }
func (s *Seller) PayPalAccountID() string      { return s.get("SELLERPAYPALACCOUNTID") }
