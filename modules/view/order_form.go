package view

import (
	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/markup"
	"github.com/example/storefront-demo/modules/eventbus"
)

const activeButtonClass = "button_alt-active"

// OrderForm is the delivery step: payment method toggle buttons plus
// the address input.
type OrderForm struct {
	*Form

	card *markup.Element
	cash *markup.Element
}

// NewOrderForm binds the delivery form unit.
func NewOrderForm(root *markup.Element, bus *eventbus.Bus) (*OrderForm, error) {
	form, err := NewForm(root, bus, shop.DeliveryFields, shop.EventOrderSubmit)
	if err != nil {
		return nil, err
	}

	card := root.QueryName(shop.PaymentCard)
	cash := root.QueryName(shop.PaymentCash)
	o := &OrderForm{Form: form, card: card, cash: cash}

	if card != nil && cash != nil {
		card.On("click", func(ev *markup.Event) {
			ev.StopPropagation()
			o.pickPayment(shop.PaymentCard)
		})
		cash.On("click", func(ev *markup.Event) {
			ev.StopPropagation()
			o.pickPayment(shop.PaymentCash)
		})
	}
	return o, nil
}

func (o *OrderForm) pickPayment(method string) {
	active, inactive := o.card, o.cash
	if method == shop.PaymentCash {
		active, inactive = o.cash, o.card
	}
	active.ToggleClass(activeButtonClass, true)
	inactive.ToggleClass(activeButtonClass, false)
	o.OnInputChange(shop.FieldPayment, method)
}

// DisableButtons clears the payment selection highlight.
func (o *OrderForm) DisableButtons() {
	o.card.ToggleClass(activeButtonClass, false)
	o.cash.ToggleClass(activeButtonClass, false)
}

// ContactsForm is the second checkout step: email and phone inputs.
type ContactsForm struct {
	*Form
}

// NewContactsForm binds the contacts form unit.
func NewContactsForm(root *markup.Element, bus *eventbus.Bus) (*ContactsForm, error) {
	form, err := NewForm(root, bus, shop.ContactFields, shop.EventContactsSubmit)
	if err != nil {
		return nil, err
	}
	return &ContactsForm{Form: form}, nil
}
