package shop

// Payment method tokens accepted by the order API.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// Order draft field names. These double as the keys of the
// validation-error map and as the Field of an InputChange payload.
const (
	FieldPayment = "payment"
	FieldAddress = "address"
	FieldEmail   = "email"
	FieldPhone   = "phone"
)

// DeliveryFields and ContactFields list each form half's fields in
// declaration order. Error messages are joined in this order.
var (
	DeliveryFields = []string{FieldPayment, FieldAddress}
	ContactFields  = []string{FieldEmail, FieldPhone}
)

// OrderDraft is the in-progress checkout record, filled one field at a
// time across the two form steps. Items and Total stay empty until the
// moment of submission.
type OrderDraft struct {
	Items   []string `json:"items"`
	Payment string   `json:"payment"`
	Address string   `json:"address"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Total   *float64 `json:"total"`
}

// Field returns the named string field of the draft. Unknown names
// return ok=false.
func (o *OrderDraft) Field(name string) (string, bool) {
	switch name {
	case FieldPayment:
		return o.Payment, true
	case FieldAddress:
		return o.Address, true
	case FieldEmail:
		return o.Email, true
	case FieldPhone:
		return o.Phone, true
	}
	return "", false
}

// SetField assigns the named string field of the draft. Unknown names
// return false and leave the draft untouched.
func (o *OrderDraft) SetField(name, value string) bool {
	switch name {
	case FieldPayment:
		o.Payment = value
	case FieldAddress:
		o.Address = value
	case FieldEmail:
		o.Email = value
	case FieldPhone:
		o.Phone = value
	default:
		return false
	}
	return true
}

// FormErrors maps an order-draft field name to a human-readable message.
// An empty map means the form half is valid. Each validation pass builds
// a fresh map; maps are replaced, never merged.
type FormErrors map[string]string
