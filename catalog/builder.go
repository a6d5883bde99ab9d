package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/thinglist-app/backend/domain"
	"github.com/thinglist-app/backend/store"
)

// Defaults applied when a contribution field is absent or unparsable.
// Normalization never rejects input: a malformed field degrades to its
// default instead of raising.
const (
	DefaultName     = "Untitled Item"
	DefaultCategory = "Misc"
	DefaultQuantity = 1
	DefaultPrice    = 0.0
)

// Builder merges a fixed seed list with the contributions currently in
// the store. It holds no state of its own: every Build is a fresh
// merge, so contributions added after one build show up in the next.
type Builder struct {
	seed func() []domain.Item
	repo store.ContributionRepository
}

func NewBuilder(seed func() []domain.Item, repo store.ContributionRepository) *Builder {
	return &Builder{seed: seed, repo: repo}
}

// Build returns the canonical catalog: the seed block in its original
// order, then normalized contributions in arrival order.
func (b *Builder) Build(ctx context.Context) ([]domain.Item, error) {
	items := b.seed()

	contributions, err := b.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list contributions")
	}

	for _, c := range contributions {
		items = append(items, Normalize(c))
	}
	return items, nil
}

// Normalize converts a raw contribution into a canonical item using
// the defaulting table above. Contributions have no quantity field, so
// quantity is always DefaultQuantity.
func Normalize(c domain.Contribution) domain.Item {
	item := domain.Item{
		Name:        c.Name,
		Quantity:    DefaultQuantity,
		Category:    c.Status,
		Description: c.Description,
		Location:    c.Location,
		UnitPrice:   parsePrice(c.Price),
		ImagePath:   c.ImagePath,
	}

	if strings.TrimSpace(item.Name) == "" {
		item.Name = DefaultName
	}
	if strings.TrimSpace(item.Category) == "" {
		item.Category = DefaultCategory
	}
	return item
}

// parsePrice strips currency glyphs and thousands separators before
// parsing. A parse failure or a negative amount yields DefaultPrice.
func parsePrice(raw string) float64 {
	clean := strings.NewReplacer("$", "", ",", "").Replace(raw)
	clean = strings.TrimSpace(clean)

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || v < 0 {
		return DefaultPrice
	}
	return v
}
