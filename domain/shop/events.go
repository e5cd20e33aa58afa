package shop

// Event vocabulary published on the session bus. These names are the
// wire protocol between the state object, the render units, and the
// wiring layer.
const (
	// Published by the state object.
	EventItemsChanged       = "items:changed"
	EventBasketChanged      = "basket:changed"
	EventOrderReady         = "order:ready"
	EventOrderErrors        = "orderFormErrors:change"
	EventContactsErrors     = "contactsFormErrors:change"

	// User-intent signals published by render units.
	EventCardSelect         = "card:select"
	EventCardAddToBasket    = "card:addToBasket"
	EventBasketOpen         = "basket:open"
	EventBasketDelete       = "basket:delete"
	EventBasketOrder        = "basket:order"
	EventOrderInputChange   = "orderInput:change"
	EventOrderSubmit        = "order:submit"
	EventContactsSubmit     = "contacts:submit"
	EventOrderSuccess       = "order:success"

	// Dialog lifecycle.
	EventModalOpen  = "modal:open"
	EventModalClose = "modal:close"
)

// InputChange is the payload of an orderInput:change event: one
// keystroke or control change on either checkout form.
type InputChange struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// OrderResult is the order API's answer to a successful submission.
type OrderResult struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}
