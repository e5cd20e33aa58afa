package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/modules/cache"
)

const catalogCacheKey = "catalog"

// Service implements the two API operations over the repository, with
// a cache-aside catalog read.
type Service struct {
	repo    *Repository
	cache   *cache.Cache
	sfGroup singleflight.Group
}

// NewService creates the backend service. The cache may be nil, in
// which case reads go straight to the database.
func NewService(repo *Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// Catalog returns the full product list. Cache hits skip the database;
// misses go through singleflight so concurrent misses produce one
// query.
func (s *Service) Catalog(ctx context.Context) ([]shop.ProductRecord, error) {
	if s.cache != nil {
		var cached []shop.ProductRecord
		found, err := s.cache.Get(ctx, catalogCacheKey, &cached)
		if err != nil {
			log.Printf("[backend] cache error on catalog read: %v", err)
		}
		if found {
			return cached, nil
		}
	}

	val, err, _ := s.sfGroup.Do(catalogCacheKey, func() (any, error) {
		products, err := s.repo.ListProducts()
		if err != nil {
			return nil, err
		}
		records := make([]shop.ProductRecord, 0, len(products))
		for _, p := range products {
			records = append(records, shop.ProductRecord{
				ID:          p.ID,
				Title:       p.Title,
				Description: p.Description,
				Image:       p.Image,
				Category:    p.Category,
				Price:       p.Price,
			})
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	records := val.([]shop.ProductRecord)

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogCacheKey, records); err != nil {
			log.Printf("[backend] cache error on catalog write: %v", err)
		}
	}
	return records, nil
}

// PlaceOrder validates the draft, recomputes the total server-side
// from the stored prices (a nil price counts zero), persists the
// order, and returns the confirmation.
func (s *Service) PlaceOrder(_ context.Context, draft shop.OrderDraft) (shop.OrderResult, error) {
	if err := validateDraft(draft); err != nil {
		return shop.OrderResult{}, err
	}

	total := 0.0
	for _, id := range draft.Items {
		product, err := s.repo.FindProduct(id)
		if err != nil {
			return shop.OrderResult{}, fmt.Errorf("unknown item %q: %w", id, err)
		}
		if product.Price != nil {
			total += *product.Price
		}
	}

	items, err := json.Marshal(draft.Items)
	if err != nil {
		return shop.OrderResult{}, fmt.Errorf("failed to encode items: %w", err)
	}

	order := &Order{
		ID:        uuid.New().String(),
		Payment:   draft.Payment,
		Address:   draft.Address,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Total:     total,
		Items:     string(items),
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateOrder(order); err != nil {
		return shop.OrderResult{}, err
	}

	log.Printf("[backend] accepted order %s: %d items, total %v", order.ID, len(draft.Items), total)
	return shop.OrderResult{ID: order.ID, Total: total}, nil
}

// validateDraft applies the same field rules the storefront enforces,
// since the API must not trust its clients.
func validateDraft(draft shop.OrderDraft) error {
	if len(draft.Items) == 0 {
		return fmt.Errorf("order has no items")
	}
	if draft.Payment != shop.PaymentCash && draft.Payment != shop.PaymentCard {
		return fmt.Errorf("order %s", shop.MsgMissingPayment)
	}
	if draft.Address == "" {
		return fmt.Errorf("order %s", shop.MsgMissingAddress)
	}
	if !shop.ValidEmail(draft.Email) {
		return fmt.Errorf("order %s", shop.MsgInvalidEmail)
	}
	if !shop.ValidPhone(draft.Phone) {
		return fmt.Errorf("order %s", shop.MsgInvalidPhone)
	}
	return nil
}
