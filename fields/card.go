package fields

import (
	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/nvp"
)

var creditCardSchema = nvp.NewSchema(
	"CREDITCARDTYPE", "ACCT", "EXPDATE", "CVV2", "STARTDATE", "ISSUENUMBER",
)

// CreditCard is the card charged by a direct payment or a recurring profile.
type CreditCard struct{ group }

func NewCreditCard(cardType consts.CreditCardType, number string) *CreditCard {
	c := &CreditCard{newGroup(creditCardSchema, nil)}
	c.set("CREDITCARDTYPE", cardType.String())
	c.set("ACCT", number)
	return c
}

func CreditCardFromNVP(v *nvp.Values) *CreditCard {
	return &CreditCard{newGroup(creditCardSchema, v)}
}

func (c *CreditCard) Type() string   { return c.get("CREDITCARDTYPE") }
func (c *CreditCard) Number() string { return c.get("ACCT") }

// SetExpirationDate takes MMYYYY.
func (c *CreditCard) SetExpirationDate(date string) { c.set("EXPDATE", date) }
func (c *CreditCard) ExpirationDate() string        { return c.get("EXPDATE") }
func (c *CreditCard) SetCVV2(cvv2 string)           { c.set("CVV2", cvv2) }
func (c *CreditCard) CVV2() string                  { return c.get("CVV2") }

// SetStartDate takes MMYYYY. Maestro and Solo cards only.
func (c *CreditCard) SetStartDate(date string)     { c.set("STARTDATE", date) }
func (c *CreditCard) StartDate() string            { return c.get("STARTDATE") }
func (c *CreditCard) SetIssueNumber(number string) { c.set("ISSUENUMBER", number) }
func (c *CreditCard) IssueNumber() string          { return c.get("ISSUENUMBER") }

var secure3DSchema = nvp.NewSchema("AUTHSTATUS3DS", "MPIVENDOR3DS", "CAVV", "ECI3DS", "XID")

// Secure3D carries the 3-D Secure authentication result of a card payment.
type Secure3D struct{ group }

func NewSecure3D() *Secure3D {
	return &Secure3D{newGroup(secure3DSchema, nil)}
}

func Secure3DFromNVP(v *nvp.Values) *Secure3D {
	return &Secure3D{newGroup(secure3DSchema, v)}
}

func (s *Secure3D) SetAuthStatus(status string) { s.set("AUTHSTATUS3DS", status) }
func (s *Secure3D) AuthStatus() string          { return s.get("AUTHSTATUS3DS") }
func (s *Secure3D) SetMPIVendor(status string)  { s.set("MPIVENDOR3DS", status) }
func (s *Secure3D) MPIVendor() string           { return s.get("MPIVENDOR3DS") }
func (s *Secure3D) SetCAVV(cavv string)         { s.set("CAVV", cavv) }
func (s *Secure3D) CAVV() string                { return s.get("CAVV") }
func (s *Secure3D) SetECI(eci string)           { s.set("ECI3DS", eci) }
func (s *Secure3D) ECI() string                 { return s.get("ECI3DS") }
func (s *Secure3D) SetXID(xid string)           { s.set("XID", xid) }
func (s *Secure3D) XID() string                 { return s.get("XID") }
