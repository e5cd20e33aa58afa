package view

import (
	"github.com/example/storefront-demo/markup"
)

// SuccessActions carries the close callback for the success panel.
type SuccessActions struct {
	OnClose func()
}

// Success is the order-confirmation panel shown after the API accepts
// a submission.
type Success struct {
	Component

	description *markup.Element
}

// NewSuccess binds the success panel unit.
func NewSuccess(root *markup.Element, actions *SuccessActions) (*Success, error) {
	description, err := Require(root, "order-success__description")
	if err != nil {
		return nil, err
	}
	closeBtn, err := Require(root, "order-success__close")
	if err != nil {
		return nil, err
	}

	s := &Success{Component: NewComponent(root), description: description}

	closeBtn.On("click", func(ev *markup.Event) {
		ev.StopPropagation()
		if actions != nil && actions.OnClose != nil {
			actions.OnClose()
		}
	})

	s.Bind("total", func(v any) {
		if total, ok := v.(float64); ok {
			s.SetTotal(total)
		}
	})
	return s, nil
}

// SetTotal writes the server-reported total into the description.
func (s *Success) SetTotal(total float64) {
	s.description.SetText("Debited " + FormatPrice(total) + currencySuffix)
}
