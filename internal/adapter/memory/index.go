package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

type indexEntry struct {
	owner   model.UserID
	terms   []string
	seq     int
	created int64
}

// Index is a naive in-memory implementation of port.Index: case-insensitive
// token matching with term-frequency scoring. It trades relevance quality
// for zero dependencies and fully deterministic scores.
type Index struct {
	mutex   sync.RWMutex
	entries map[model.NoteID]*indexEntry
	seq     int
}

func NewIndex() *Index {
	return &Index{
		entries: make(map[model.NoteID]*indexEntry),
	}
}

var _ port.Index = &Index{}

// Index implements port.Index.
func (i *Index) Index(ctx context.Context, note model.PersistedNote) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	seq := i.seq
	if existing, exists := i.entries[note.ID()]; exists {
		seq = existing.seq
	} else {
		i.seq++
		seq = i.seq
	}

	i.entries[note.ID()] = &indexEntry{
		owner:   note.Owner(),
		terms:   tokenize(note.Title() + " " + note.Content()),
		seq:     seq,
		created: note.CreatedAt().UnixNano(),
	}

	return nil
}

// Remove implements port.Index.
func (i *Index) Remove(ctx context.Context, id model.NoteID) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	delete(i.entries, id)

	return nil
}

// SearchByOwner implements port.Index.
func (i *Index) SearchByOwner(ctx context.Context, ownerID model.UserID, query string, opts port.IndexSearchOptions) ([]*port.IndexSearchResult, error) {
	i.mutex.RLock()
	defer i.mutex.RUnlock()

	queryTerms := tokenize(query)

	type scoredEntry struct {
		id      model.NoteID
		score   float64
		created int64
	}

	scored := make([]*scoredEntry, 0)

	for id, entry := range i.entries {
		if entry.owner != ownerID {
			continue
		}

		var score float64
		for _, queryTerm := range queryTerms {
			for _, term := range entry.terms {
				if term == queryTerm {
					score++
				}
			}
		}

		if score == 0 {
			continue
		}

		scored = append(scored, &scoredEntry{
			id:      id,
			score:   score,
			created: entry.created,
		})
	}

	slices.SortFunc(scored, func(a, b *scoredEntry) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		if a.created != b.created {
			if a.created < b.created {
				return -1
			}
			return 1
		}
		return strings.Compare(string(a.id), string(b.id))
	})

	maxResults := len(scored)
	if opts.MaxResults > 0 && opts.MaxResults < maxResults {
		maxResults = opts.MaxResults
	}

	results := make([]*port.IndexSearchResult, 0, maxResults)
	for _, entry := range scored[:maxResults] {
		results = append(results, &port.IndexSearchResult{
			NoteID: entry.id,
			Score:  entry.score,
		})
	}

	return results, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
