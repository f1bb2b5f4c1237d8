package bleve

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// IndexMapping builds the note index mapping: title and content are analyzed
// with the english analyzer (case folding, stop words, stemming), the owner
// field is an exact keyword used as a filter, and created carries the
// creation timestamp for tie-breaking sorts.
func IndexMapping() *mapping.IndexMappingImpl {
	mapping := bleve.NewIndexMapping()

	mapping.TypeField = "_type"
	mapping.DefaultAnalyzer = en.AnalyzerName

	noteMapping := bleve.NewDocumentMapping()

	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = en.AnalyzerName
	titleFieldMapping.Store = false
	titleFieldMapping.IncludeTermVectors = true
	noteMapping.AddFieldMappingsAt("title", titleFieldMapping)

	contentFieldMapping := bleve.NewTextFieldMapping()
	contentFieldMapping.Analyzer = en.AnalyzerName
	contentFieldMapping.Store = false
	contentFieldMapping.IncludeTermVectors = true
	noteMapping.AddFieldMappingsAt("content", contentFieldMapping)

	// The routing field must stay out of _all or queries for "note" would
	// match every document.
	typeFieldMapping := bleve.NewTextFieldMapping()
	typeFieldMapping.Analyzer = keyword.Name
	typeFieldMapping.Store = false
	typeFieldMapping.IncludeInAll = false
	noteMapping.AddFieldMappingsAt("_type", typeFieldMapping)

	ownerFieldMapping := bleve.NewTextFieldMapping()
	ownerFieldMapping.Analyzer = keyword.Name
	ownerFieldMapping.Store = false
	ownerFieldMapping.IncludeInAll = false
	noteMapping.AddFieldMappingsAt("owner", ownerFieldMapping)

	createdFieldMapping := bleve.NewNumericFieldMapping()
	createdFieldMapping.Store = false
	createdFieldMapping.IncludeInAll = false
	noteMapping.AddFieldMappingsAt("created", createdFieldMapping)

	mapping.AddDocumentMapping("note", noteMapping)

	return mapping
}
