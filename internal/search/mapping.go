package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for catalog
// documents. Brewery names are frequently non-English so the simple
// analyzer is used instead of a stemming one.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = simple.Name

	docMapping := bleve.NewDocumentMapping()

	// Name is the primary search target.
	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Analyzer = simple.Name
	nameFieldMapping.Store = true
	nameFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	cityFieldMapping := bleve.NewTextFieldMapping()
	cityFieldMapping.Analyzer = simple.Name
	cityFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("city", cityFieldMapping)

	stateFieldMapping := bleve.NewTextFieldMapping()
	stateFieldMapping.Analyzer = simple.Name
	stateFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("state", stateFieldMapping)

	countryFieldMapping := bleve.NewTextFieldMapping()
	countryFieldMapping.Analyzer = simple.Name
	countryFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("country", countryFieldMapping)

	// Notes are searchable but not stored.
	notesFieldMapping := bleve.NewTextFieldMapping()
	notesFieldMapping.Analyzer = simple.Name
	notesFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("notes", notesFieldMapping)

	// Exact-match fields.
	typeFieldMapping := bleve.NewTextFieldMapping()
	typeFieldMapping.Analyzer = keyword.Name
	typeFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("brewery_type", typeFieldMapping)

	originFieldMapping := bleve.NewTextFieldMapping()
	originFieldMapping.Analyzer = keyword.Name
	originFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("origin", originFieldMapping)

	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
