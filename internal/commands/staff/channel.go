package staff

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
)

func createChannelCommand() *discord.Command {
	return discord.NewCommand(
		"canal",
		"Configura los canales del buzón de sugerencias",
		"staff",
		channelHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tipo",
			Description: "Qué canal quieres configurar",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Staff (revisión)", Value: store.RoleStaff},
				{Name: "Público (aprobadas)", Value: store.RolePublic},
				{Name: "Sugerencias (envíos)", Value: store.RoleSuggestions},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "El canal a usar",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

func channelHandler(ctx *discord.CommandContext) error {
	role := ctx.GetStringOption("tipo")
	channel := ctx.GetChannelOption("canal")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ Canal inválido.")
	}

	if err := store.Get().SetChannel(ctx.Interaction.GuildID, role, channel.ID); err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo guardar la configuración. Inténtalo de nuevo más tarde.")
	}

	logger.Info(fmt.Sprintf("Canal %s configurado a %s en %s", role, channel.ID, ctx.Interaction.GuildID), "Staff")
	return ctx.Reply(fmt.Sprintf("✅ Canal de **%s** configurado a <#%s>.", role, channel.ID))
}
