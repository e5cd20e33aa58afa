package web

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/modules/eventbus"
	"github.com/example/storefront-demo/modules/session"
	"github.com/example/storefront-demo/modules/state"
)

type fakeAPI struct {
	products []shop.ProductRecord
}

func (f *fakeAPI) GetProducts(_ context.Context) ([]shop.ProductRecord, error) {
	return f.products, nil
}

func (f *fakeAPI) SendOrder(_ context.Context, _ shop.OrderDraft) (shop.OrderResult, error) {
	return shop.OrderResult{ID: "order-1", Total: 100}, nil
}

type fakeProvider struct {
	sess *session.Session
}

func (p *fakeProvider) Session() *session.Session { return p.sess }

func setupTestModule(t *testing.T) (*Module, *state.AppState) {
	t.Helper()

	price := 100.0
	bus := eventbus.New()
	st := state.New(bus)
	sess, err := session.NewSession(bus, st, &fakeAPI{
		products: []shop.ProductRecord{
			{ID: "a", Title: "Widget", Price: &price},
		},
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := sess.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	m := NewModule(0, &fakeProvider{sess: sess}, bus)
	if err := m.Init(nil); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = m.app.Shutdown() })
	return m, st
}

func TestDocumentServed(t *testing.T) {
	m, _ := setupTestModule(t)

	resp, err := m.app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Widget") {
		t.Fatalf("document should contain the catalog, got:\n%s", body)
	}
}

func TestModalFragment(t *testing.T) {
	m, _ := setupTestModule(t)

	req := httptest.NewRequest("POST", "/intent/"+session.IntentCardSelect,
		strings.NewReader(`{"id":"a"}`))
	req.Header.Set("Content-Type", "application/json")
	if _, err := m.app.Test(req); err != nil {
		t.Fatalf("intent: %v", err)
	}

	resp, err := m.app.Test(httptest.NewRequest("GET", "/fragment/modal", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "modal_active") {
		t.Fatalf("fragment should show the open dialog, got:\n%s", body)
	}
}

func TestIntentEndpoint(t *testing.T) {
	m, st := setupTestModule(t)

	req := httptest.NewRequest("POST", "/intent/"+session.IntentCardAddToBasket,
		strings.NewReader(`{"id":"a"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := m.app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 204 {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
	if st.BasketSize() != 1 {
		t.Fatalf("basket size = %d, want 1", st.BasketSize())
	}
}

func TestUnknownIntentRejected(t *testing.T) {
	m, _ := setupTestModule(t)

	resp, err := m.app.Test(httptest.NewRequest("POST", "/intent/nonsense", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	m, _ := setupTestModule(t)

	resp, err := m.app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
