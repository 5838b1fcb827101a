package discord

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
	"github.com/bwmarrin/discordgo"
)

// BlocklistMiddleware verifica si el autor está bloqueado en este servidor.
// Blocked users get an ephemeral rejection and the command never runs.
func (c *ExtendedClient) BlocklistMiddleware(ctx *CommandContext) error {
	st := store.Get()
	if st == nil {
		return nil
	}

	userID := ctx.User().ID
	guildID := ctx.Interaction.GuildID
	if guildID == "" || !st.IsBlocked(guildID, userID) {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🚫 Acceso Denegado",
		Description: "Has sido bloqueado del buzón de sugerencias de este servidor.",
		Color:       0xFF0000,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})

	logger.Warn(fmt.Sprintf("Usuario bloqueado intentó enviar sugerencia: %s", userID), "BlocklistMiddleware")
	return fmt.Errorf("user is blocked")
}
