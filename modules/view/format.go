package view

import (
	"strconv"
	"strings"

	"github.com/example/storefront-demo/domain/shop"
)

// Currency and placeholder texts used across the units.
const (
	currencySuffix = " synapses"
	priceless      = "Priceless"
)

// FormatPrice renders a price with space-separated thousands:
// 1234567 -> "1 234 567".
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i:]
	}
	neg := false
	if strings.HasPrefix(whole, "-") {
		neg = true
		whole = whole[1:]
	}

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// priceLabel renders a price with the currency suffix; nil is the
// not-for-sale sentinel.
func priceLabel(price *float64) string {
	if price == nil {
		return priceless
	}
	return FormatPrice(*price) + currencySuffix
}

// JoinErrors collects the non-empty messages for the given fields, in
// field declaration order, joined with "; ".
func JoinErrors(errs shop.FormErrors, fields []string) string {
	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		if msg := errs[field]; msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, "; ")
}
