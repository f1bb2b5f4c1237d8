package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/harshrai654/notes-api/internal/http/handler/api"
	"github.com/pkg/errors"
)

type QueryNotesOptions struct {
	Page  *int
	Limit *int
}

type QueryNotesOptionFunc func(opts *QueryNotesOptions)

func WithQueryNotesPage(page int) QueryNotesOptionFunc {
	return func(opts *QueryNotesOptions) {
		opts.Page = &page
	}
}

func WithQueryNotesLimit(limit int) QueryNotesOptionFunc {
	return func(opts *QueryNotesOptions) {
		opts.Limit = &limit
	}
}

func NewQueryNotesOptions(funcs ...QueryNotesOptionFunc) *QueryNotesOptions {
	opts := &QueryNotesOptions{}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func (c *Client) QueryNotes(ctx context.Context, funcs ...QueryNotesOptionFunc) ([]api.Note, int64, error) {
	opts := NewQueryNotesOptions(funcs...)

	endpoint := &url.URL{
		Path: "/notes",
	}

	query := endpoint.Query()

	if opts.Page != nil {
		query.Set("page", strconv.FormatInt(int64(*opts.Page), 10))
	}

	if opts.Limit != nil {
		query.Set("limit", strconv.FormatInt(int64(*opts.Limit), 10))
	}

	endpoint.RawQuery = query.Encode()

	var res api.NoteListResponse

	if err := c.jsonRequest(ctx, "GET", endpoint.String(), nil, &res); err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return res.Notes, res.Total, nil
}

func (c *Client) CreateNote(ctx context.Context, title string, content string) (*api.Note, error) {
	body, err := jsonBody(api.CreateNoteRequest{
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var res api.NoteResponse

	if err := c.jsonRequest(ctx, "POST", "/notes", body, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Note, nil
}

func (c *Client) GetNote(ctx context.Context, id string) (*api.Note, error) {
	endpoint := &url.URL{
		Path: "/notes",
	}

	endpoint = endpoint.JoinPath(id)

	var res api.NoteResponse

	if err := c.jsonRequest(ctx, "GET", endpoint.String(), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id string, title string, content string) (*api.Note, error) {
	body, err := jsonBody(api.UpdateNoteRequest{
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := &url.URL{
		Path: "/notes",
	}

	endpoint = endpoint.JoinPath(id)

	var res api.NoteResponse

	if err := c.jsonRequest(ctx, "PATCH", endpoint.String(), body, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	endpoint := &url.URL{
		Path: "/notes",
	}

	endpoint = endpoint.JoinPath(id)

	if err := c.request(ctx, "DELETE", endpoint.String(), nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) ShareNote(ctx context.Context, id string, userID string) (*api.Note, error) {
	body, err := jsonBody(api.ShareNoteRequest{
		UserID: userID,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := &url.URL{
		Path: "/notes",
	}

	endpoint = endpoint.JoinPath(id, "share")

	var res api.NoteResponse

	if err := c.jsonRequest(ctx, "POST", endpoint.String(), body, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Note, nil
}
