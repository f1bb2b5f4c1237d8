package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/harshrai654/notes-api/internal/http/handler/api"
	"github.com/pkg/errors"
)

type SearchOptions struct {
	Size *int
}

type SearchOptionFunc func(opts *SearchOptions)

func WithSearchSize(size int) SearchOptionFunc {
	return func(opts *SearchOptions) {
		opts.Size = &size
	}
}

func NewSearchOptions(funcs ...SearchOptionFunc) *SearchOptions {
	opts := &SearchOptions{}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// Search queries the authenticated user's notes by relevance.
func (c *Client) Search(ctx context.Context, query string, funcs ...SearchOptionFunc) ([]api.SearchHit, error) {
	opts := NewSearchOptions(funcs...)

	endpoint := &url.URL{
		Path: "/search",
	}

	values := endpoint.Query()
	values.Set("q", query)

	if opts.Size != nil {
		values.Set("size", strconv.FormatInt(int64(*opts.Size), 10))
	}

	endpoint.RawQuery = values.Encode()

	var res api.SearchResponse

	if err := c.jsonRequest(ctx, "GET", endpoint.String(), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Hits, nil
}
