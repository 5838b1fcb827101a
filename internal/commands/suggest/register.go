// Package suggest provides the user-facing suggestion commands.
package suggest

import (
	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
)

// RegisterSuggestCommands registers the /suggest command and its modal handler
func RegisterSuggestCommands(client *discord.ExtendedClient) {
	cmd := createSuggestCommand()
	client.CommandHandler.RegisterCommand(cmd)

	// The modal path shares the same submission flow
	client.RegisterModalHandler(modalPrefix, suggestModalHandler)
}
