// Package profile holds the API credentials sent with every request.
package profile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/nvp"
)

// Profile is what the client prepends to every request body.
type Profile interface {
	NVP() *nvp.Values
	// IsAPISignature selects the api-3t. endpoint host.
	IsAPISignature() bool
}

// APISignature is the username, password and signature triple issued by
// PayPal. Subject is the email or payer id of the account the call is made
// on behalf of.
type APISignature struct {
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	Signature string `toml:"signature"`
	Subject   string `toml:"subject"`
}

var _ Profile = APISignature{}

func NewAPISignature(username, password, signature string) APISignature {
	return APISignature{Username: username, Password: password, Signature: signature}
}

// WithSubject returns a copy that acts on behalf of subject.
func (p APISignature) WithSubject(subject string) APISignature {
	p.Subject = subject
	return p
}

func (p APISignature) IsAPISignature() bool { return true }

// NVP returns USER, PWD, SIGNATURE and, when set, SUBJECT.
func (p APISignature) NVP() *nvp.Values {
	v := nvp.NewValues()
	v.Set(consts.KeyUser, p.Username)
	v.Set(consts.KeyPassword, p.Password)
	v.Set(consts.KeySignature, p.Signature)
	if p.Subject != "" {
		v.Set(consts.KeySubject, p.Subject)
	}
	return v
}

// Validate reports the credentials that are missing.
func (p APISignature) Validate() error {
	var missing []string
	if strings.TrimSpace(p.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(p.Password) == "" {
		missing = append(missing, "password")
	}
	if strings.TrimSpace(p.Signature) == "" {
		missing = append(missing, "signature")
	}
	if len(missing) > 0 {
		return fmt.Errorf("api signature: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// String masks the password and the signature.
func (p APISignature) String() string {
	return fmt.Sprintf("APISignature{username=%s password=%s signature=%s subject=%s}",
		p.Username, mask(p.Password), mask(p.Signature), p.Subject)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}

// Environment variables read by FromEnv.
const (
	EnvUsername    = "PAYPAL_USERNAME"
	EnvPassword    = "PAYPAL_PASSWORD"
	EnvSignature   = "PAYPAL_SIGNATURE"
	EnvSubject     = "PAYPAL_SUBJECT"
	EnvEnvironment = "PAYPAL_ENVIRONMENT"
)

// ErrNoCredentials is returned by FromEnv when no PAYPAL_ variable is set.
var ErrNoCredentials = errors.New("paypal credentials are not set")

// FromEnv reads the credentials and the environment from PAYPAL_ variables.
// An unset PAYPAL_ENVIRONMENT means sandbox.
func FromEnv() (APISignature, consts.Environment, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (APISignature, consts.Environment, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	p := APISignature{
		Username:  get(EnvUsername),
		Password:  get(EnvPassword),
		Signature: get(EnvSignature),
		Subject:   get(EnvSubject),
	}
	if p == (APISignature{}) {
		return APISignature{}, "", ErrNoCredentials
	}
	if err := p.Validate(); err != nil {
		return APISignature{}, "", err
	}

	env, err := consts.ParseEnvironment(get(EnvEnvironment))
	if err != nil {
		return APISignature{}, "", err
	}
	return p, env, nil
}
