package main

import (
	"github.com/harshrai654/notes-api/internal/command"
	"github.com/harshrai654/notes-api/internal/command/account"
	"github.com/harshrai654/notes-api/internal/command/note"
)

func main() {
	command.Main(
		"notes-cli", "a notes client tool",
		account.SignUpCommand(),
		account.LogInCommand(),
		account.LogOutCommand(),
		account.TokensCommand(),
		note.Command(),
	)
}
