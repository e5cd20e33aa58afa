package view

import (
	"testing"

	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/markup"
	"github.com/example/storefront-demo/modules/eventbus"
)

func contactsFormMarkup() *markup.Element {
	return markup.New("form", "form").Append(
		markup.New("input").SetAttr("name", shop.FieldEmail),
		markup.New("input").SetAttr("name", shop.FieldPhone),
		markup.New("span", "form__errors"),
		markup.New("button", "form__submit"),
	)
}

func deliveryFormMarkup() *markup.Element {
	return markup.New("form", "form").Append(
		markup.New("button", "button").SetAttr("name", shop.PaymentCard),
		markup.New("button", "button").SetAttr("name", shop.PaymentCash),
		markup.New("input").SetAttr("name", shop.FieldAddress),
		markup.New("span", "form__errors"),
		markup.New("button", "form__submit"),
	)
}

func TestFormRepublishesInput(t *testing.T) {
	bus := eventbus.New()
	form, err := NewForm(contactsFormMarkup(), bus, shop.ContactFields, shop.EventContactsSubmit)
	if err != nil {
		t.Fatalf("NewForm() error: %v", err)
	}

	var got shop.InputChange
	bus.Subscribe(shop.EventOrderInputChange, func(data any) {
		got = data.(shop.InputChange)
	})

	form.Root().QueryName(shop.FieldEmail).Input("a@b.io")

	if got.Field != shop.FieldEmail || got.Value != "a@b.io" {
		t.Errorf("published change = %+v", got)
	}
}

func TestFormSubmitPublishes(t *testing.T) {
	bus := eventbus.New()
	form, err := NewForm(contactsFormMarkup(), bus, shop.ContactFields, shop.EventContactsSubmit)
	if err != nil {
		t.Fatalf("NewForm() error: %v", err)
	}

	fired := false
	bus.Subscribe(shop.EventContactsSubmit, func(any) { fired = true })

	form.SetValid(true)
	form.Root().Query("form__submit").Click()

	if !fired {
		t.Error("submit click did not publish contacts:submit")
	}
}

func TestFormValidTogglesSubmit(t *testing.T) {
	bus := eventbus.New()
	form, _ := NewForm(contactsFormMarkup(), bus, shop.ContactFields, shop.EventContactsSubmit)

	form.SetValid(false)
	if !form.Root().Query("form__submit").Disabled() {
		t.Error("submit enabled while invalid")
	}
	form.SetValid(true)
	if form.Root().Query("form__submit").Disabled() {
		t.Error("submit disabled while valid")
	}
}

func TestFormErrorsSlot(t *testing.T) {
	bus := eventbus.New()
	form, _ := NewForm(contactsFormMarkup(), bus, shop.ContactFields, shop.EventContactsSubmit)

	form.SetErrors(shop.MsgInvalidEmail + "; " + shop.MsgInvalidPhone)

	if got := form.Root().Query("form__errors").Text(); got == "" {
		t.Error("error slot left empty")
	}
}

func TestFormMissingSubmitIsConstructionError(t *testing.T) {
	bus := eventbus.New()
	bare := markup.New("form", "form").Append(markup.New("span", "form__errors"))

	if _, err := NewForm(bare, bus, nil, shop.EventContactsSubmit); err == nil {
		t.Error("expected construction error for missing submit control")
	}
}

func TestOrderFormPaymentToggle(t *testing.T) {
	bus := eventbus.New()
	form, err := NewOrderForm(deliveryFormMarkup(), bus)
	if err != nil {
		t.Fatalf("NewOrderForm() error: %v", err)
	}

	var got shop.InputChange
	bus.Subscribe(shop.EventOrderInputChange, func(data any) {
		got = data.(shop.InputChange)
	})

	card := form.Root().QueryName(shop.PaymentCard)
	cash := form.Root().QueryName(shop.PaymentCash)

	card.Click()
	if got.Field != shop.FieldPayment || got.Value != shop.PaymentCard {
		t.Errorf("payment change = %+v, want card", got)
	}
	if !card.HasClass(activeButtonClass) || cash.HasClass(activeButtonClass) {
		t.Error("card click did not move the highlight")
	}

	cash.Click()
	if got.Value != shop.PaymentCash {
		t.Errorf("payment change = %+v, want cash", got)
	}
	if card.HasClass(activeButtonClass) || !cash.HasClass(activeButtonClass) {
		t.Error("cash click did not move the highlight")
	}

	form.DisableButtons()
	if card.HasClass(activeButtonClass) || cash.HasClass(activeButtonClass) {
		t.Error("DisableButtons left a highlight")
	}
}
