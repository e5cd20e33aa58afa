package view

import (
	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/markup"
	"github.com/example/storefront-demo/modules/eventbus"
)

// Form is the input-bound render unit base. Every keystroke on a bound
// input is republished as an orderInput:change event; the submit
// control is gated by SetValid and the error slot written by SetErrors.
type Form struct {
	Component

	bus    *eventbus.Bus
	submit *markup.Element
	errors *markup.Element
}

// NewForm binds a form unit to its root. The named inputs republish
// input events; the submit control publishes submitEvent on click.
func NewForm(root *markup.Element, bus *eventbus.Bus, fields []string, submitEvent string) (*Form, error) {
	submit, err := Require(root, "form__submit")
	if err != nil {
		return nil, err
	}
	errSlot, err := Require(root, "form__errors")
	if err != nil {
		return nil, err
	}

	f := &Form{
		Component: NewComponent(root),
		bus:       bus,
		submit:    submit,
		errors:    errSlot,
	}

	for _, field := range fields {
		input := root.QueryName(field)
		if input == nil {
			continue
		}
		name := field
		input.On("input", func(ev *markup.Event) {
			f.OnInputChange(name, ev.Value)
		})
	}

	submit.On("click", func(ev *markup.Event) {
		ev.StopPropagation()
		bus.Publish(submitEvent, nil)
	})

	f.Bind("valid", func(v any) {
		if valid, ok := v.(bool); ok {
			f.SetValid(valid)
		}
	})
	f.Bind("errors", func(v any) {
		if msg, ok := v.(string); ok {
			f.SetErrors(msg)
		}
	})
	return f, nil
}

// OnInputChange publishes a generic field-change event.
func (f *Form) OnInputChange(field, value string) {
	f.bus.Publish(shop.EventOrderInputChange, shop.InputChange{Field: field, Value: value})
}

// SetValid enables or disables the submit control.
func (f *Form) SetValid(valid bool) {
	f.submit.SetDisabled(!valid)
}

// SetErrors writes the pre-joined error string into the error slot.
func (f *Form) SetErrors(msg string) {
	f.errors.SetText(msg)
}

// SetInput writes a value into the named input without firing events.
func (f *Form) SetInput(field, value string) {
	if input := f.Root().QueryName(field); input != nil {
		input.SetValue(value)
	}
}
