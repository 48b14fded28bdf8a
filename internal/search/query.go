package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a search query.
type Params struct {
	Query       string
	BreweryType string // exact type filter, empty = all
	Limit       int
	Offset      int
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{Limit: 20}
}

// Result holds the outcome of a search.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

// Hit is a single search result.
type Hit struct {
	ID          string  `json:"id"`
	Score       float64 `json:"score"`
	Name        string  `json:"name"`
	BreweryType string  `json:"brewery_type,omitempty"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
}

// Search executes a search query against the catalog index.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if params.Limit <= 0 {
		params.Limit = 20
	}

	searchRequest := bleve.NewSearchRequestOptions(
		buildSearchQuery(params), params.Limit, params.Offset, false)
	searchRequest.SortBy([]string{"-_score", "name"})
	searchRequest.Fields = []string{
		"name", "brewery_type", "city", "state", "country",
	}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		h := Hit{
			ID:    hit.ID,
			Score: hit.Score,
		}
		if n, ok := hit.Fields["name"].(string); ok {
			h.Name = n
		}
		if t, ok := hit.Fields["brewery_type"].(string); ok {
			h.BreweryType = t
		}
		if c, ok := hit.Fields["city"].(string); ok {
			h.City = c
		}
		if st, ok := hit.Fields["state"].(string); ok {
			h.State = st
		}
		if c, ok := hit.Fields["country"].(string); ok {
			h.Country = c
		}
		result.Hits = append(result.Hits, h)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params. Name
// matches are boosted over location and notes hits, with a fuzzy
// clause for typo tolerance and a prefix clause for partial words.
func buildSearchQuery(params Params) query.Query {
	var queries []query.Query

	if params.Query != "" {
		textQueries := []query.Query{}

		nameMatch := bleve.NewMatchQuery(params.Query)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)
		textQueries = append(textQueries, nameMatch)

		for _, field := range []string{"city", "state", "country", "notes"} {
			m := bleve.NewMatchQuery(params.Query)
			m.SetField(field)
			textQueries = append(textQueries, m)
		}

		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("name")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("name")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	if params.BreweryType != "" {
		tq := bleve.NewTermQuery(strings.ToLower(params.BreweryType))
		tq.SetField("brewery_type")
		queries = append(queries, tq)
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}
