package openfoodfacts

import "strings"

// beerCategoryTags are the taxonomy tags that mark a product as beer.
var beerCategoryTags = map[string]bool{
	"en:beers":               true,
	"en:craft-beers":         true,
	"en:lager-beers":         true,
	"en:ale-beers":           true,
	"en:wheat-beers":         true,
	"en:stouts":              true,
	"en:india-pale-ales":     true,
	"en:non-alcoholic-beers": true,
}

// beerKeywords matches free-text category and name fields. Products
// entered without taxonomy tags often only carry a localized word.
var beerKeywords = []string{
	"beer",
	"bière",
	"biere",
	"bier",
	"cerveza",
	"cerveja",
	"birra",
	"piwo",
	"pivo",
	"sör",
	"sor",
	"öl",
	"lager",
	"pilsner",
	"pilsener",
	"stout",
	"porter",
	"ipa",
	"pale ale",
}

// IsBeer reports whether a looked-up product is a beer. Taxonomy tags
// are authoritative; the keyword scan is a fallback for sparse entries.
func IsBeer(p *Product) bool {
	if p == nil {
		return false
	}

	for _, tag := range p.CategoryTags {
		if beerCategoryTags[strings.ToLower(tag)] {
			return true
		}
	}

	haystack := strings.ToLower(p.Categories + " " + p.Name)
	for _, kw := range beerKeywords {
		if containsWord(haystack, kw) {
			return true
		}
	}
	return false
}

// containsWord matches kw on word boundaries so "ipa" does not match
// inside "participant".
func containsWord(s, kw string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		beforeOK := start == 0 || !isWordByte(s[start-1])
		afterOK := end == len(s) || !isWordByte(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
