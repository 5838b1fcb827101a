// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (suggest, staff, utils, dev)
package commands

import (
	"github.com/PancyStudios/PancySuggestGo/internal/commands/dev"
	"github.com/PancyStudios/PancySuggestGo/internal/commands/staff"
	"github.com/PancyStudios/PancySuggestGo/internal/commands/suggest"
	"github.com/PancyStudios/PancySuggestGo/internal/commands/utils"
	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Suggestion submission (/suggest)
	suggest.RegisterSuggestCommands(client)

	// Review commands (/staff aprobar, /staff denegar, /staff pendientes, ...)
	staff.RegisterStaffCommands(client)

	// Utility commands (/utils ping, /utils status, ...)
	utils.RegisterUtilsCommands(client)

	// Dev commands (/dev eval, only in dev guild)
	dev.Register(client)
}
