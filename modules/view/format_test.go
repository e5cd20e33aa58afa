package view

import (
	"testing"

	"github.com/example/storefront-demo/domain/shop"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{1500, "1 500"},
		{1234567, "1 234 567"},
		{99.5, "99.5"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinErrorsDeclarationOrder(t *testing.T) {
	errs := shop.FormErrors{
		shop.FieldAddress: shop.MsgMissingAddress,
		shop.FieldPayment: shop.MsgMissingPayment,
	}

	got := JoinErrors(errs, shop.DeliveryFields)
	want := shop.MsgMissingPayment + "; " + shop.MsgMissingAddress
	if got != want {
		t.Errorf("JoinErrors() = %q, want %q", got, want)
	}
}

func TestJoinErrorsSkipsEmpty(t *testing.T) {
	errs := shop.FormErrors{shop.FieldPhone: shop.MsgInvalidPhone}

	got := JoinErrors(errs, shop.ContactFields)
	if got != shop.MsgInvalidPhone {
		t.Errorf("JoinErrors() = %q, want %q", got, shop.MsgInvalidPhone)
	}
}
