package shop

import "regexp"

// Validation messages surfaced inline next to the form fields.
const (
	MsgInvalidEmail   = "requires a valid email"
	MsgInvalidPhone   = "requires a valid phone number"
	MsgMissingPayment = "must specify a payment method"
	MsgMissingAddress = "must specify an address"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

	// Optional +7/8 prefix, optional area code in parentheses, then
	// seven digits in a 3-2-2 grouping separated by spaces or hyphens.
	phonePattern = regexp.MustCompile(`^(\+7|8)?[\s\-]?(\(?\d{3}\)?[\s\-]?)?(\d{3}[\s\-]?\d{2}[\s\-]?\d{2})$`)
)

// ValidEmail reports whether s is a plausible email address.
func ValidEmail(s string) bool {
	return s != "" && emailPattern.MatchString(s)
}

// ValidPhone reports whether s is a plausible phone number.
func ValidPhone(s string) bool {
	return s != "" && phonePattern.MatchString(s)
}

// ValidateDelivery checks the delivery half of the draft (payment
// method and address) and returns a fresh error map.
func ValidateDelivery(o *OrderDraft) FormErrors {
	errs := FormErrors{}
	if o.Payment == "" {
		errs[FieldPayment] = MsgMissingPayment
	}
	if o.Address == "" {
		errs[FieldAddress] = MsgMissingAddress
	}
	return errs
}

// ValidateContacts checks the contact half of the draft (email and
// phone) and returns a fresh error map.
func ValidateContacts(o *OrderDraft) FormErrors {
	errs := FormErrors{}
	if !ValidEmail(o.Email) {
		errs[FieldEmail] = MsgInvalidEmail
	}
	if !ValidPhone(o.Phone) {
		errs[FieldPhone] = MsgInvalidPhone
	}
	return errs
}
