// Package client is a Go client for the notes HTTP API.
package client

import (
	"net/http"
	"net/url"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      string
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		token:      opts.Token,
	}
}

// SetToken replaces the bearer token used to authenticate requests. SignUp
// and LogIn call it with the freshly issued token.
func (c *Client) SetToken(token string) {
	c.token = token
}
