// Package staff provides the review-side commands of the suggestion box:
// approving, denying, listing and the per-guild configuration.
package staff

import (
	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
)

// RegisterStaffCommands registers all review commands as /staff subcommands
func RegisterStaffCommands(client *discord.ExtendedClient) {
	approveCmd := createApproveCommand()
	denyCmd := createDenyCommand()
	pendingCmd := createPendingCommand()
	channelCmd := createChannelCommand()
	blockCmd := createBlockCommand()
	unblockCmd := createUnblockCommand()

	// Build the /staff command group with all subcommands
	staffGroup := client.CommandHandler.BuildCommandGroup(
		"staff",
		"Gestión del buzón de sugerencias",
		approveCmd,
		denyCmd,
		pendingCmd,
		channelCmd,
		blockCmd,
		unblockCmd,
	)

	client.CommandHandler.AddGlobalCommand(staffGroup)
}
