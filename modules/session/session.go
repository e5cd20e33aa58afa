package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/markup"
	"github.com/example/storefront-demo/modules/eventbus"
	"github.com/example/storefront-demo/modules/shopapi"
	"github.com/example/storefront-demo/modules/state"
	"github.com/example/storefront-demo/modules/view"
)

const (
	catalogRetries = 5
	catalogBackoff = 200 * time.Millisecond
)

// Session drives one shopper's storefront. It owns the markup
// document, every render unit, and the handler set that reacts to bus
// events. All entry points from the outside (HTTP intents, the
// startup catalog load, key presses) serialize on the session mutex;
// bus dispatch inside a locked entry point is synchronous, so
// handlers never race each other.
type Session struct {
	mu sync.Mutex

	bus   *eventbus.Bus
	state *state.AppState
	api   shopapi.OrderAPI
	tmpl  *markup.Templates

	doc      *markup.Document
	page     *view.Page
	modal    *view.Modal
	basket   *view.BasketView
	order    *view.OrderForm
	contacts *view.ContactsForm
	success  *view.Success
}

// NewSession builds the document from templates, constructs all
// render units, and registers the bus handlers. It fails when a
// template is missing a required element.
func NewSession(bus *eventbus.Bus, st *state.AppState, api shopapi.OrderAPI) (*Session, error) {
	s := &Session{
		bus:   bus,
		state: st,
		api:   api,
		tmpl:  BuildTemplates(),
	}

	body, err := s.tmpl.Clone(tmplPage)
	if err != nil {
		return nil, err
	}
	modalRoot, err := s.tmpl.Clone(tmplModal)
	if err != nil {
		return nil, err
	}
	body.Append(modalRoot)
	s.doc = markup.NewDocument(body)

	if s.page, err = view.NewPage(body, bus); err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	if s.modal, err = view.NewModal(modalRoot, s.doc, bus); err != nil {
		return nil, fmt.Errorf("modal: %w", err)
	}

	basketRoot, err := s.tmpl.Clone(tmplBasket)
	if err != nil {
		return nil, err
	}
	if s.basket, err = view.NewBasketView(basketRoot, bus); err != nil {
		return nil, fmt.Errorf("basket: %w", err)
	}

	orderRoot, err := s.tmpl.Clone(tmplOrder)
	if err != nil {
		return nil, err
	}
	if s.order, err = view.NewOrderForm(orderRoot, bus); err != nil {
		return nil, fmt.Errorf("order form: %w", err)
	}

	contactsRoot, err := s.tmpl.Clone(tmplContacts)
	if err != nil {
		return nil, err
	}
	if s.contacts, err = view.NewContactsForm(contactsRoot, bus); err != nil {
		return nil, fmt.Errorf("contacts form: %w", err)
	}

	successRoot, err := s.tmpl.Clone(tmplSuccess)
	if err != nil {
		return nil, err
	}
	s.success, err = view.NewSuccess(successRoot, &view.SuccessActions{
		OnClose: func() { s.modal.Close() },
	})
	if err != nil {
		return nil, fmt.Errorf("success: %w", err)
	}

	s.registerHandlers()
	return s, nil
}

func (s *Session) registerHandlers() {
	s.bus.Subscribe(shop.EventItemsChanged, func(any) { s.renderCatalog() })

	s.bus.Subscribe(shop.EventCardSelect, func(data any) {
		if item, ok := data.(*state.Product); ok {
			s.openPreview(item)
		}
	})

	s.bus.Subscribe(shop.EventCardAddToBasket, func(data any) {
		if item, ok := data.(*state.Product); ok {
			s.addToBasket(item)
		}
	})

	s.bus.Subscribe(shop.EventBasketOpen, func(any) { s.openBasket() })

	s.bus.Subscribe(shop.EventBasketDelete, func(data any) {
		if item, ok := data.(*state.Product); ok {
			s.deleteFromBasket(item)
		}
	})

	s.bus.Subscribe(shop.EventBasketOrder, func(any) { s.openOrderForm() })

	s.bus.Subscribe(shop.EventOrderErrors, func(data any) {
		if errs, ok := data.(shop.FormErrors); ok {
			s.order.SetValid(noErrorsFor(errs, shop.DeliveryFields))
			s.order.SetErrors(view.JoinErrors(errs, shop.DeliveryFields))
		}
	})

	s.bus.Subscribe(shop.EventContactsErrors, func(data any) {
		if errs, ok := data.(shop.FormErrors); ok {
			s.contacts.SetValid(noErrorsFor(errs, shop.ContactFields))
			s.contacts.SetErrors(view.JoinErrors(errs, shop.ContactFields))
		}
	})

	s.bus.Subscribe(shop.EventOrderInputChange, func(data any) {
		if in, ok := data.(shop.InputChange); ok {
			s.state.SetOrderField(in.Field, in.Value)
		}
	})

	s.bus.Subscribe(shop.EventOrderSubmit, func(any) { s.openContactsForm() })

	s.bus.Subscribe(shop.EventContactsSubmit, func(any) { s.submitOrder() })

	s.bus.Subscribe(shop.EventOrderSuccess, func(data any) {
		if res, ok := data.(shop.OrderResult); ok {
			s.showSuccess(res)
		}
	})

	s.bus.Subscribe(shop.EventModalClose, func(any) {
		s.page.SetLocked(false)
		s.state.RefreshOrder()
	})
}

// LoadCatalog fetches the product list with a bounded retry and feeds
// it into the state. On exhaustion the catalog stays empty and a
// notice is shown; the basket and draft are untouched.
func (s *Session) LoadCatalog(ctx context.Context) error {
	var items []shop.ProductRecord
	var err error
	for attempt := 0; attempt < catalogRetries; attempt++ {
		if items, err = s.api.GetProducts(ctx); err == nil {
			break
		}
		log.Printf("[session] catalog fetch attempt %d: %v", attempt+1, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(catalogBackoff):
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.showNotice("The catalog is unavailable right now. Please try again later.")
		return err
	}
	s.state.SetCatalog(items)
	return nil
}

// Intent names accepted from the outside.
const (
	IntentCardSelect      = shop.EventCardSelect
	IntentCardAddToBasket = shop.EventCardAddToBasket
	IntentBasketOpen      = shop.EventBasketOpen
	IntentBasketDelete    = shop.EventBasketDelete
	IntentBasketOrder     = shop.EventBasketOrder
	IntentOrderInput      = shop.EventOrderInputChange
	IntentOrderSubmit     = shop.EventOrderSubmit
	IntentContactsSubmit  = shop.EventContactsSubmit
	IntentModalClose      = shop.EventModalClose
)

// Intent runs one shopper action. Product intents resolve the id in
// the payload against the catalog; an unknown id or intent name is an
// error.
func (s *Session) Intent(name string, payload map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case IntentCardSelect, IntentCardAddToBasket, IntentBasketDelete:
		item := s.state.FindProduct(payload["id"])
		if item == nil {
			return fmt.Errorf("unknown product id %q", payload["id"])
		}
		s.bus.Publish(name, item)
	case IntentOrderInput:
		s.bus.Publish(name, shop.InputChange{Field: payload["field"], Value: payload["value"]})
	case IntentBasketOpen, IntentBasketOrder, IntentOrderSubmit, IntentContactsSubmit:
		s.bus.Publish(name, nil)
	case IntentModalClose:
		s.modal.Close()
	default:
		return fmt.Errorf("unknown intent %q", name)
	}
	return nil
}

// PressKey forwards a key press to the document listeners. Escape
// closes an open modal.
func (s *Session) PressKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.PressKey(key)
}

// RenderHTML serializes the current document.
func (s *Session) RenderHTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Root.HTML()
}

// RenderModalHTML serializes just the dialog subtree.
func (s *Session) RenderModalHTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal.Root().HTML()
}

// Document exposes the markup tree for tests and the web surface.
// Callers must not mutate it concurrently with Intent.
func (s *Session) Document() *markup.Document {
	return s.doc
}

func (s *Session) renderCatalog() {
	items := s.state.Catalog
	cards := make([]*markup.Element, 0, len(items))
	for _, item := range items {
		root, err := s.tmpl.Clone(tmplCardCatalog)
		if err != nil {
			log.Printf("[session] catalog card: %v", err)
			continue
		}
		card, err := view.NewCard("card", root, &view.CardActions{
			OnClick: func() { s.bus.Publish(shop.EventCardSelect, item) },
		})
		if err != nil {
			log.Printf("[session] catalog card: %v", err)
			continue
		}
		cards = append(cards, card.Render(map[string]any{
			"id":       item.ID,
			"title":    item.Title,
			"image":    item.Image,
			"category": item.Category,
			"price":    item.Price,
		}))
	}
	s.page.SetCatalog(cards)
	s.page.SetCounter(s.state.BasketSize())
}

func (s *Session) openPreview(item *state.Product) {
	root, err := s.tmpl.Clone(tmplCardPreview)
	if err != nil {
		log.Printf("[session] preview: %v", err)
		return
	}
	card, err := view.NewCardPreview(root, &view.CardActions{
		OnClick: func() { s.bus.Publish(shop.EventCardAddToBasket, item) },
	})
	if err != nil {
		log.Printf("[session] preview: %v", err)
		return
	}
	s.page.SetLocked(true)
	s.modal.RenderContent(card.Render(map[string]any{
		"id":          item.ID,
		"title":       item.Title,
		"image":       item.Image,
		"category":    item.Category,
		"description": item.Description,
		"price":       item.Price,
		"selected":    item.Selected,
	}))
}

func (s *Session) addToBasket(item *state.Product) {
	item.Selected = true
	s.state.AddToBasket(item)
	s.page.SetCounter(s.state.BasketSize())
	s.modal.Close()
}

func (s *Session) openBasket() {
	s.page.SetLocked(true)
	s.renderBasket()
	s.modal.RenderContent(s.basket.Root())
}

// renderBasket rebuilds the basket line items from the current state.
func (s *Session) renderBasket() {
	items := s.state.Basket
	lines := make([]*markup.Element, 0, len(items))
	for _, item := range items {
		root, err := s.tmpl.Clone(tmplCardBasket)
		if err != nil {
			log.Printf("[session] basket line: %v", err)
			continue
		}
		line, err := view.NewBasketItem(root, &view.BasketItemActions{
			OnDelete: func() { s.bus.Publish(shop.EventBasketDelete, item) },
		})
		if err != nil {
			log.Printf("[session] basket line: %v", err)
			continue
		}
		lines = append(lines, line.Render(map[string]any{
			"title": item.Title,
			"price": item.Price,
		}))
	}
	s.basket.SetList(lines)
	s.basket.SetPrice(s.state.GetTotal())
}

func (s *Session) deleteFromBasket(item *state.Product) {
	s.state.RemoveFromBasket(item.ID)
	item.Selected = false
	s.renderBasket()
	s.page.SetCounter(s.state.BasketSize())
	if s.state.BasketSize() == 0 {
		s.basket.DisableButton()
	}
}

func (s *Session) openOrderForm() {
	s.order.SetInput(shop.FieldAddress, "")
	s.modal.RenderContent(s.order.Render(map[string]any{
		"valid":  false,
		"errors": "",
	}))
}

func (s *Session) openContactsForm() {
	total := s.state.GetTotal()
	s.state.Order.Total = &total
	s.state.SetItems()
	s.contacts.SetInput(shop.FieldEmail, "")
	s.contacts.SetInput(shop.FieldPhone, "")
	s.modal.RenderContent(s.contacts.Render(map[string]any{
		"valid":  false,
		"errors": "",
	}))
}

// submitOrder runs the whole submission on the session goroutine. A
// second contacts:submit while one is in flight is dropped by the
// BeginSubmit guard; the client timeout bounds the call. The page
// unlock and guard release happen no matter how the call ends.
func (s *Session) submitOrder() {
	if !s.state.BeginSubmit() {
		log.Printf("[session] submission already in flight, ignoring")
		return
	}
	s.page.SetLocked(true)
	defer func() {
		s.page.SetLocked(false)
		s.state.EndSubmit()
	}()

	res, err := s.api.SendOrder(context.Background(), s.state.Order)
	if err != nil {
		log.Printf("[session] order submission: %v", err)
		s.showNotice("Something went wrong sending your order. Please try again.")
		return
	}

	s.bus.Publish(shop.EventOrderSuccess, res)
	s.state.RefreshOrder()
	s.order.DisableButtons()
	s.state.ResetSelected()
}

func (s *Session) showSuccess(res shop.OrderResult) {
	s.success.SetTotal(res.Total)
	s.modal.RenderContent(s.success.Root())
	s.state.ClearBasket()
	s.page.SetCounter(0)
}

// showNotice swaps the modal content for a plain message panel.
func (s *Session) showNotice(msg string) {
	panel := markup.New("div", "notice")
	text := markup.New("p", "notice__text")
	text.SetText(msg)
	panel.Append(text)
	s.modal.RenderContent(panel)
}

func noErrorsFor(errs shop.FormErrors, fields []string) bool {
	for _, f := range fields {
		if errs[f] != "" {
			return false
		}
	}
	return true
}
