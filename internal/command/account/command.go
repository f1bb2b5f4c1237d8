package account

import (
	"fmt"
	"time"

	"github.com/harshrai654/notes-api/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagUsername = "username"
	flagPassword = "password"
)

func credentialFlags() []cli.Flag {
	return common.WithCommonFlags(
		&cli.StringFlag{
			Name:     flagUsername,
			Aliases:  []string{"u"},
			Usage:    "Account username",
			Required: true,
		},
		&cli.StringFlag{
			Name:     flagPassword,
			Aliases:  []string{"p"},
			Usage:    "Account password",
			Required: true,
			EnvVars:  []string{"NOTES_CLI_PASSWORD"},
		},
	)
}

func SignUpCommand() *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "Register a new account and print the issued API token",
		Flags: credentialFlags(),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := notesClient.SignUp(cCtx.Context, cCtx.String(flagUsername), cCtx.String(flagPassword))
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("%s\nuser: %s\ntoken: %s\n", res.Message, res.UserID, res.Token)

			return nil
		},
	}
}

func TokensCommand() *cli.Command {
	return &cli.Command{
		Name:  "tokens",
		Usage: "List the API tokens issued to the account",
		Flags: common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			tokens, err := notesClient.Tokens(cCtx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			for _, token := range tokens {
				fmt.Printf("%s\t%s\t%s\n", token.ID, token.Label, token.CreatedAt.Format(time.RFC3339))
			}

			return nil
		},
	}
}

func LogOutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Revoke the API token the client is configured with",
		Flags: common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := notesClient.LogOut(cCtx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Println(res.Message)

			return nil
		},
	}
}

func LogInCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Authenticate and print a fresh API token",
		Flags: credentialFlags(),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := notesClient.LogIn(cCtx.Context, cCtx.String(flagUsername), cCtx.String(flagPassword))
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("%s\nuser: %s\ntoken: %s\n", res.Message, res.UserID, res.Token)

			return nil
		},
	}
}
