package shopapi

import (
	"context"
	"fmt"

	"github.com/example/storefront-demo/domain/shop"
)

// OrderAPI is the surface the session wiring depends on; tests swap in
// a fake.
type OrderAPI interface {
	GetProducts(ctx context.Context) ([]shop.ProductRecord, error)
	SendOrder(ctx context.Context, draft shop.OrderDraft) (shop.OrderResult, error)
}

// Service exposes the two order-API operations over a Client.
type Service struct {
	client *Client
}

// Compile-time interface check.
var _ OrderAPI = (*Service)(nil)

// NewService creates the API service.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// catalogResponse mirrors the API's product-list envelope.
type catalogResponse struct {
	Total int                  `json:"total"`
	Items []shop.ProductRecord `json:"items"`
}

// GetProducts fetches the full catalog.
func (s *Service) GetProducts(ctx context.Context) ([]shop.ProductRecord, error) {
	var resp catalogResponse
	if err := s.client.Get(ctx, "/product", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	return resp.Items, nil
}

// SendOrder submits the completed draft and returns the server's
// confirmation.
func (s *Service) SendOrder(ctx context.Context, draft shop.OrderDraft) (shop.OrderResult, error) {
	var result shop.OrderResult
	if err := s.client.Post(ctx, "/order", draft, &result); err != nil {
		return shop.OrderResult{}, fmt.Errorf("failed to submit order: %w", err)
	}
	return result, nil
}
