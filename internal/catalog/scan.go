package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
	"github.com/adamtorokhu/BriefBeer/internal/openfoodfacts"
)

// SearchByBarcode resolves a scanned code through the product lookup
// service and surfaces the outcome as a notice. A matched beer carries
// an action with a prefilled record so the user can add it to the
// catalog in one step. Lookup failures are surfaced rather than
// swallowed: the user initiated the scan and deserves feedback.
func (s *Session) SearchByBarcode(ctx context.Context, code string) error {
	if s.lookup == nil {
		s.publishNotice("Barcode lookup is not available.", nil)
		return nil
	}

	// A record already carrying this code short-circuits the lookup.
	if existing := s.findByQRCode(ctx, code); existing != nil {
		s.publishSelected(existing)
		return nil
	}

	product, found, err := s.lookup.Lookup(ctx, code)
	if err != nil {
		s.logger.Warn("barcode lookup failed", "code", code, "error", err)
		s.publishNotice("Couldn't look up that barcode. Check your connection and try again.", nil)
		return err
	}

	if !found {
		s.publishNotice(fmt.Sprintf("No product found for code %s.", code), nil)
		return nil
	}

	if !openfoodfacts.IsBeer(product) {
		name := product.Name
		if name == "" {
			name = "This product"
		}
		s.publishNotice(fmt.Sprintf("%s doesn't look like a beer.", name), nil)
		return nil
	}

	prefilled := prefilledRecord(product, code)
	s.publishNotice(
		fmt.Sprintf("Found %s. Add its brewery to your catalog?", displayName(product)),
		&NoticeAction{Label: "Add brewery", Record: prefilled},
	)
	return nil
}

// findByQRCode scans the store for a record already tagged with the
// code. The catalog is small enough that a linear scan is fine.
func (s *Session) findByQRCode(ctx context.Context, code string) *domain.Brewery {
	all, err := s.store.Breweries.All(ctx)
	if err != nil {
		return nil
	}
	for i := range all {
		if all[i].QRCode == code {
			return &all[i]
		}
	}
	return nil
}

// prefilledRecord drafts a user record from a matched product. The
// record has no id yet; CreateBrewery assigns one when the user
// confirms the action.
func prefilledRecord(p *openfoodfacts.Product, code string) *domain.Brewery {
	name := strings.TrimSpace(p.Brands)
	if name == "" {
		name = strings.TrimSpace(p.Name)
	}
	return &domain.Brewery{
		Name:   name,
		Notes:  strings.TrimSpace(p.Name),
		QRCode: code,
		Origin: domain.OriginUser,
	}
}

func displayName(p *openfoodfacts.Product) string {
	if p.Name != "" {
		return p.Name
	}
	if p.Brands != "" {
		return p.Brands
	}
	return "a beer"
}
