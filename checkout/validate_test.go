package checkout

import (
	"errors"
	"testing"

	"puntogo/models"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"912345678", true},
		{"987654321", true},
		{"9 1234 5678", true},  // separators stripped before checking
		{"(9)12-345-678", true},
		{"812345678", false},   // wrong prefix
		{"91234567", false},    // too short
		{"9123456789", false},  // too long
		{"", false},
		{"abcdefghi", false},
		{"9abcdefgh", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("+51 912-345-678"); got != "51912345678" {
		t.Errorf("NormalizePhone = %q", got)
	}
}

func validForm() Form {
	return Form{
		Name:          "Maria Lopez",
		Phone:         "912345678",
		PaymentMethod: models.PaymentCashOnDelivery,
	}
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Form)
		minimumMet bool
		wantErr    error
	}{
		{"valid cash order", func(f *Form) {}, true, nil},
		{"minimum order dominates everything", func(f *Form) { f.Name = ""; f.Phone = "x" }, false, ErrBelowMinimum},
		{"empty name", func(f *Form) { f.Name = "   " }, true, ErrNameRequired},
		{"bad phone", func(f *Form) { f.Phone = "812345678" }, true, ErrPhoneFormat},
		{"digital without proof", func(f *Form) { f.PaymentMethod = models.PaymentDigital }, true, ErrProofRequired},
		{"digital with reference", func(f *Form) {
			f.PaymentMethod = models.PaymentDigital
			f.PaymentReference = "OP-1234"
		}, true, nil},
		{"digital with file only", func(f *Form) {
			f.PaymentMethod = models.PaymentDigital
			f.HasProofFile = true
		}, true, nil},
		{"digital with blank reference and no file", func(f *Form) {
			f.PaymentMethod = models.PaymentDigital
			f.PaymentReference = "   "
		}, true, ErrProofRequired},
		{"unknown payment method", func(f *Form) { f.PaymentMethod = "CRYPTO" }, true, ErrPaymentMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			err := ValidateForm(f, tt.minimumMet)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateForm = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
