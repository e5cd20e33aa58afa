package backend

import (
	"fmt"
	"log"

	"github.com/google/uuid"
)

func price(v float64) *float64 {
	return &v
}

// seedCatalog populates an empty catalog with the demo inventory. A
// non-empty catalog is left alone.
func seedCatalog(repo *Repository) error {
	count, err := repo.CountProducts()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []*Product{
		{Title: "Bug-be-gone charm", Description: "Wards off production incidents for a sprint.", Image: "charm.svg", Category: "other", Price: price(750)},
		{Title: "Rubber duck, senior grade", Description: "Listens without judgement. Occasionally quacks back.", Image: "duck.svg", Category: "soft-skill", Price: price(1450)},
		{Title: "Infinite coffee voucher", Description: "Redeemable at any standup, forever.", Image: "coffee.svg", Category: "additional", Price: price(2500)},
		{Title: "Big red deploy button", Description: "Press responsibly.", Image: "button.svg", Category: "button", Price: price(1900)},
		{Title: "Legacy codebase map", Description: "Here be dragons. All of them annotated.", Image: "map.svg", Category: "hard-skill", Price: price(9990)},
		{Title: "Tabs-to-spaces converter", Description: "Settles the argument once and for all.", Image: "converter.svg", Category: "hard-skill", Price: price(1200)},
		{Title: "Founder's gratitude", Description: "Genuinely priceless.", Image: "gratitude.svg", Category: "other", Price: nil},
	}
	for _, item := range items {
		item.ID = uuid.New().String()
		if err := repo.CreateProduct(item); err != nil {
			return fmt.Errorf("failed to seed %q: %w", item.Title, err)
		}
	}

	log.Printf("[backend] seeded catalog with %d products", len(items))
	return nil
}
