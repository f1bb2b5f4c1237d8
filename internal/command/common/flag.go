package common

import (
	"net/url"

	"github.com/harshrai654/notes-api/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramServer = "server"
	paramToken  = "token"
)

var (
	flagServer = &cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:5000",
		EnvVars: []string{"NOTES_CLI_SERVER"},
		Usage:   "Notes server base url",
	}
	flagToken = &cli.StringFlag{
		Name:    paramToken,
		Aliases: []string{"t"},
		EnvVars: []string{"NOTES_CLI_TOKEN"},
		Usage:   "API token, as returned by the signup and login commands",
	}
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
		flagToken,
	}, flags...)
}

func GetNotesClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	opts := []client.OptionFunc{
		client.WithBaseURL(serverURL),
	}

	if token := ctx.String(paramToken); token != "" {
		opts = append(opts, client.WithToken(token))
	}

	return client.New(opts...), nil
}
