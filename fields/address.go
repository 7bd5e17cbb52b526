package fields

import "github.com/stremovskyy/go-nvp/nvp"

var addressSchema = nvp.NewSchema(
	"STREET", "STREET2", "CITY", "STATE", "COUNTRYCODE", "ZIP", "SHIPTOPHONENUM",
)

// Address is a billing address.
type Address struct{ group }

func NewAddress(street, city, state, countryCode string) *Address {
	a := &Address{newGroup(addressSchema, nil)}
	a.set("STREET", street)
	a.set("CITY", city)
	a.set("STATE", state)
	a.set("COUNTRYCODE", countryCode)
	return a
}

func AddressFromNVP(v *nvp.Values) *Address {
	return &Address{newGroup(addressSchema, v)}
}

func (a *Address) Street() string          { return a.get("STREET") }
func (a *Address) Street2() string         { return a.get("STREET2") }
func (a *Address) SetStreet2(s string)     { a.set("STREET2", s) }
func (a *Address) City() string            { return a.get("CITY") }
func (a *Address) State() string           { return a.get("STATE") }
func (a *Address) CountryCode() string     { return a.get("COUNTRYCODE") }
func (a *Address) Zip() string             { return a.get("ZIP") }
func (a *Address) SetZip(zip string)       { a.set("ZIP", zip) }
func (a *Address) PhoneNumber() string     { return a.get("SHIPTOPHONENUM") }
func (a *Address) SetPhoneNumber(p string) { a.set("SHIPTOPHONENUM", p) }

var shippingAddressSchema = nvp.NewSchema(
	"SHIPTONAME", "SHIPTOSTREET", "SHIPTOSTREET2", "SHIPTOCITY", "SHIPTOSTATE",
	"SHIPTOZIP", "SHIPTOCOUNTRYCODE", "SHIPTOPHONENUM", "ADDRESSSTATUS",
)

// ShippingAddress is the ship-to address of a payment.
type ShippingAddress struct{ group }

func NewShippingAddress() *ShippingAddress {
	return &ShippingAddress{newGroup(shippingAddressSchema, nil)}
}

func ShippingAddressFromNVP(v *nvp.Values) *ShippingAddress {
	return &ShippingAddress{newGroup(shippingAddressSchema, v)}
}

func (a *ShippingAddress) Name() string            { return a.get("SHIPTONAME") }
func (a *ShippingAddress) SetName(name string)     { a.set("SHIPTONAME", name) }
func (a *ShippingAddress) Street() string          { return a.get("SHIPTOSTREET") }
func (a *ShippingAddress) SetStreet(s string)      { a.set("SHIPTOSTREET", s) }
func (a *ShippingAddress) Street2() string         { return a.get("SHIPTOSTREET2") }
func (a *ShippingAddress) SetStreet2(s string)     { a.set("SHIPTOSTREET2", s) }
func (a *ShippingAddress) City() string            { return a.get("SHIPTOCITY") }
func (a *ShippingAddress) SetCity(city string)     { a.set("SHIPTOCITY", city) }
func (a *ShippingAddress) State() string           { return a.get("SHIPTOSTATE") }
func (a *ShippingAddress) SetState(state string)   { a.set("SHIPTOSTATE", state) }
func (a *ShippingAddress) Zip() string             { return a.get("SHIPTOZIP") }
func (a *ShippingAddress) SetZip(zip string)       { a.set("SHIPTOZIP", zip) }
func (a *ShippingAddress) CountryCode() string     { return a.get("SHIPTOCOUNTRYCODE") }
func (a *ShippingAddress) SetCountryCode(c string) { a.set("SHIPTOCOUNTRYCODE", c) }
func (a *ShippingAddress) PhoneNumber() string     { return a.get("SHIPTOPHONENUM") }
func (a *ShippingAddress) SetPhoneNumber(p string) { a.set("SHIPTOPHONENUM", p) }

// AddressStatus is only returned by PayPal (Confirmed or Unconfirmed).
func (a *ShippingAddress) AddressStatus() string { return a.get("ADDRESSSTATUS") }
