package bleve

import (
	"context"

	"github.com/blevesearch/bleve/v2"
	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

const defaultMaxResults = 10

type Index struct {
	index bleve.Index
}

func NewIndex(index bleve.Index) *Index {
	return &Index{
		index: index,
	}
}

var _ port.Index = &Index{}

// Index implements port.Index.
func (i *Index) Index(ctx context.Context, note model.PersistedNote) error {
	data := map[string]any{
		"_type":   "note",
		"title":   note.Title(),
		"content": note.Content(),
		"owner":   string(note.Owner()),
		"created": float64(note.CreatedAt().UnixNano()),
	}

	if err := i.index.Index(string(note.ID()), data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Remove implements port.Index.
func (i *Index) Remove(ctx context.Context, id model.NoteID) error {
	if err := i.index.Delete(string(id)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// SearchByOwner implements port.Index.
func (i *Index) SearchByOwner(ctx context.Context, ownerID model.UserID, query string, opts port.IndexSearchOptions) ([]*port.IndexSearchResult, error) {
	ownerQuery := bleve.NewTermQuery(string(ownerID))
	ownerQuery.SetField("owner")

	matchQuery := bleve.NewMatchQuery(query)

	req := bleve.NewSearchRequest(bleve.NewConjunctionQuery(ownerQuery, matchQuery))

	req.From = 0
	req.Size = defaultMaxResults
	if opts.MaxResults > 0 {
		req.Size = opts.MaxResults
	}

	// Relevance first, creation order on ties.
	req.SortBy([]string{"-_score", "created"})

	result, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	searchResults := make([]*port.IndexSearchResult, 0, len(result.Hits))

	for _, hit := range result.Hits {
		searchResults = append(searchResults, &port.IndexSearchResult{
			NoteID: model.NoteID(hit.ID),
			Score:  hit.Score,
		})
	}

	return searchResults, nil
}

// Close releases the underlying bleve index.
func (i *Index) Close() error {
	if err := i.index.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
