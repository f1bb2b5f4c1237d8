package note

import (
	"encoding/json"
	"os"

	"github.com/harshrai654/notes-api/internal/command/common"
	"github.com/harshrai654/notes-api/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagTitle   = "title"
	flagContent = "content"
	flagPage    = "page"
	flagLimit   = "limit"
	flagUser    = "user"
	flagQuery   = "query"
	flagSize    = "size"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "note",
		Usage: "Manage notes",
		Subcommands: []*cli.Command{
			createCommand(),
			listCommand(),
			getCommand(),
			updateCommand(),
			deleteCommand(),
			shareCommand(),
			searchCommand(),
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new note",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagTitle,
				Required: true,
				Usage:    "Note title",
			},
			&cli.StringFlag{
				Name:     flagContent,
				Required: true,
				Usage:    "Note content",
			},
		),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			note, err := notesClient.CreateNote(cCtx.Context, cCtx.String(flagTitle), cCtx.String(flagContent))
			if err != nil {
				return errors.WithStack(err)
			}

			return printJSON(note)
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List your notes",
		Flags: common.WithCommonFlags(
			&cli.IntFlag{
				Name:  flagPage,
				Usage: "Result page, starting at 0",
			},
			&cli.IntFlag{
				Name:  flagLimit,
				Usage: "Maximum number of notes per page",
			},
		),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			funcs := make([]client.QueryNotesOptionFunc, 0, 2)
			if cCtx.IsSet(flagPage) {
				funcs = append(funcs, client.WithQueryNotesPage(cCtx.Int(flagPage)))
			}
			if cCtx.IsSet(flagLimit) {
				funcs = append(funcs, client.WithQueryNotesLimit(cCtx.Int(flagLimit)))
			}

			notes, total, err := notesClient.QueryNotes(cCtx.Context, funcs...)
			if err != nil {
				return errors.WithStack(err)
			}

			return printJSON(map[string]any{
				"notes": notes,
				"total": total,
			})
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show a note",
		ArgsUsage: "NOTE_ID",
		Flags:     common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			note, err := notesClient.GetNote(cCtx.Context, cCtx.Args().First())
			if err != nil {
				return errors.WithStack(err)
			}

			return printJSON(note)
		},
	}
}

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update a note's title or content",
		ArgsUsage: "NOTE_ID",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:  flagTitle,
				Usage: "New note title",
			},
			&cli.StringFlag{
				Name:  flagContent,
				Usage: "New note content",
			},
		),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			note, err := notesClient.UpdateNote(cCtx.Context, cCtx.Args().First(), cCtx.String(flagTitle), cCtx.String(flagContent))
			if err != nil {
				return errors.WithStack(err)
			}

			return printJSON(note)
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a note",
		ArgsUsage: "NOTE_ID",
		Flags:     common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := notesClient.DeleteNote(cCtx.Context, cCtx.Args().First()); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func shareCommand() *cli.Command {
	return &cli.Command{
		Name:      "share",
		Usage:     "Share a note with another user",
		ArgsUsage: "NOTE_ID",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagUser,
				Required: true,
				Usage:    "ID of the user to share the note with",
			},
		),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			note, err := notesClient.ShareNote(cCtx.Context, cCtx.Args().First(), cCtx.String(flagUser))
			if err != nil {
				return errors.WithStack(err)
			}

			return printJSON(note)
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search your notes by relevance",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagQuery,
				Aliases:  []string{"q"},
				Required: true,
				Usage:    "Search query",
			},
			&cli.IntFlag{
				Name:  flagSize,
				Usage: "Maximum number of results",
			},
		),
		Action: func(cCtx *cli.Context) error {
			notesClient, err := common.GetNotesClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			funcs := make([]client.SearchOptionFunc, 0, 1)
			if cCtx.IsSet(flagSize) {
				funcs = append(funcs, client.WithSearchSize(cCtx.Int(flagSize)))
			}

			hits, err := notesClient.Search(cCtx.Context, cCtx.String(flagQuery), funcs...)
			if err != nil {
				return errors.WithStack(err)
			}

			return printJSON(hits)
		},
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
