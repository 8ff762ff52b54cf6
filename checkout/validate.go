package checkout

import (
	"errors"
	"regexp"
	"strings"

	"puntogo/models"
)

// Validation failures map one-to-one to the message shown inline; the first
// failing rule wins and nothing else is evaluated.
var (
	ErrBelowMinimum  = errors.New("order subtotal is below the minimum order amount")
	ErrNameRequired  = errors.New("name is required")
	ErrPhoneFormat   = errors.New("phone must be 9 digits and start with 9")
	ErrProofRequired = errors.New("digital payment requires an operation number or a proof upload")
	ErrPaymentMethod = errors.New("unsupported payment method")
)

// Form is the raw checkout input, before any normalization.
type Form struct {
	Name             string
	Phone            string
	PaymentMethod    string
	PaymentReference string
	HasProofFile     bool
}

var nonDigits = regexp.MustCompile(`[^0-9]`)
var phonePattern = regexp.MustCompile(`^9[0-9]{8}$`)

// NormalizePhone strips everything that is not an ASCII digit. Separators and
// spaces in user input are tolerated, not rejected.
func NormalizePhone(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

// ValidPhone reports whether phone is a Peruvian mobile number: exactly nine
// digits, the first being 9. Input is normalized first.
func ValidPhone(raw string) bool {
	return phonePattern.MatchString(NormalizePhone(raw))
}

// ValidateForm runs the checkout rules in order and returns the first
// failure. minimumMet comes from the pricing quote and dominates every other
// rule: below the minimum order no set of fields can make the form valid.
func ValidateForm(f Form, minimumMet bool) error {
	if !minimumMet {
		return ErrBelowMinimum
	}
	if strings.TrimSpace(f.Name) == "" {
		return ErrNameRequired
	}
	if !ValidPhone(f.Phone) {
		return ErrPhoneFormat
	}
	switch f.PaymentMethod {
	case models.PaymentDigital:
		if strings.TrimSpace(f.PaymentReference) == "" && !f.HasProofFile {
			return ErrProofRequired
		}
	case models.PaymentCashOnDelivery:
		// nothing further to check
	default:
		return ErrPaymentMethod
	}
	return nil
}
