package client

import (
	"context"

	"github.com/harshrai654/notes-api/internal/http/handler/api"
	"github.com/pkg/errors"
)

// SignUp registers a new account and authenticates the client with the
// issued token.
func (c *Client) SignUp(ctx context.Context, username string, password string) (*api.AuthResponse, error) {
	body, err := jsonBody(api.CredentialsRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var res api.AuthResponse

	if err := c.jsonRequest(ctx, "POST", "/auth/signup", body, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	c.SetToken(res.Token)

	return &res, nil
}

// Tokens lists the auth tokens issued to the authenticated account.
func (c *Client) Tokens(ctx context.Context) ([]api.Token, error) {
	var res api.TokenListResponse

	if err := c.jsonRequest(ctx, "GET", "/auth/tokens", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Tokens, nil
}

// LogOut revokes the token the client holds and clears it.
func (c *Client) LogOut(ctx context.Context) (*api.AuthResponse, error) {
	var res api.AuthResponse

	if err := c.jsonRequest(ctx, "POST", "/auth/logout", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	c.SetToken("")

	return &res, nil
}

// LogIn authenticates an existing account and authenticates the client with
// the issued token.
func (c *Client) LogIn(ctx context.Context, username string, password string) (*api.AuthResponse, error) {
	body, err := jsonBody(api.CredentialsRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var res api.AuthResponse

	if err := c.jsonRequest(ctx, "POST", "/auth/login", body, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	c.SetToken(res.Token)

	return &res, nil
}
