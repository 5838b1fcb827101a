package staff

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancySuggestGo/pkg/config"
	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/feed"
	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/models"
	"github.com/PancyStudios/PancySuggestGo/pkg/notify"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
)

// ErrNoPublicChannel means the public channel is missing or unresolvable.
// The suggestion stays pending so the approval can be retried after fixing
// the configuration.
var ErrNoPublicChannel = errors.New("no hay canal público configurado")

// ApproveResult reports what happened after the record was removed from
// the pending set. PostErr is non-nil when the public post itself failed;
// the approval is already committed at that point.
type ApproveResult struct {
	Record  *models.SuggestionRecord
	JumpURL string
	PostErr error
	DM      notify.Result
}

func createApproveCommand() *discord.Command {
	return discord.NewCommand(
		"aprobar",
		"Aprueba una sugerencia pendiente y la publica",
		"staff",
		approveHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "id",
			Description: "El número de la sugerencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

func approveHandler(ctx *discord.CommandContext) error {
	id := ctx.GetIntOption("id")

	result, err := Approve(ctx.Session, ctx.Interaction.GuildID, id)
	switch {
	case errors.Is(err, ErrNoPublicChannel):
		return ctx.ReplyEphemeral("❌ No hay un canal público configurado o no es accesible. Usa `/staff canal` y vuelve a intentarlo.")
	case errors.Is(err, store.ErrNotFound):
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No hay ninguna sugerencia pendiente con el id **%d**.", id))
	case err != nil:
		return ctx.ReplyEphemeral("❌ No se pudo aprobar la sugerencia. Inténtalo de nuevo más tarde.")
	}

	if result.PostErr != nil {
		return ctx.Reply(fmt.Sprintf("⚠️ Sugerencia **#%d** aprobada, pero no se pudo publicar en el canal público.", id))
	}

	reply := fmt.Sprintf("✅ Sugerencia **#%d** aprobada y publicada.", id)
	if !result.DM.Delivered {
		reply += " (No se pudo avisar al autor por DM.)"
	}
	return ctx.Reply(reply)
}

// Approve runs the full approval flow: it resolves the public channel
// first, removes the record from the pending set, posts it publicly with
// vote reactions and notifies the author with a jump link.
//
// The channel is resolved before the record is removed so a missing or
// deleted channel never costs the suggestion. Once the removal persists,
// posting and DM failures are reported but never roll it back.
func Approve(s *discordgo.Session, guildID string, id int64) (*ApproveResult, error) {
	publicChannel := PublicChannelFor(guildID)
	if publicChannel == "" {
		return nil, ErrNoPublicChannel
	}
	if _, err := resolveChannel(s, publicChannel); err != nil {
		logger.Warn(fmt.Sprintf("Canal público %s no accesible: %v", publicChannel, err), "Staff")
		return nil, ErrNoPublicChannel
	}

	rec, err := store.Get().Approve(guildID, id)
	if err != nil {
		return nil, err
	}

	result := &ApproveResult{Record: rec}

	msg, err := s.ChannelMessageSendEmbed(publicChannel, publicEmbed(rec))
	if err != nil {
		logger.Error(fmt.Sprintf("Sugerencia #%d aprobada pero no publicada: %v", id, err), "Staff")
		result.PostErr = err
	} else {
		for _, emoji := range []string{"✅", "❌"} {
			if err := s.MessageReactionAdd(publicChannel, msg.ID, emoji); err != nil {
				logger.Debug(fmt.Sprintf("No se pudo añadir la reacción %s: %v", emoji, err), "Staff")
			}
		}
		result.JumpURL = fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, publicChannel, msg.ID)
		result.DM = notify.New(s).Approved(rec.AuthorID, result.JumpURL)
	}

	feed.Get().Publish(feed.EventApproved, guildID, id, rec.AuthorID)
	logger.Info(fmt.Sprintf("Sugerencia #%d aprobada en %s", id, guildID), "Staff")
	return result, nil
}

func publicEmbed(rec *models.SuggestionRecord) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("💡 Sugerencia #%d", rec.ID),
		Description: rec.Text,
		Color:       0x57F287,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Autor", Value: fmt.Sprintf("<@%s>", rec.AuthorID)},
		},
	}
}

// PublicChannelFor resolves the channel where approved suggestions are
// posted. The legacy suggestions channel and the global
// SUGGESTIONS_CHANNEL_ID act as fallbacks for single-guild deployments.
func PublicChannelFor(guildID string) string {
	channels := store.Get().Channels(guildID)
	if channels.Public != "" {
		return channels.Public
	}
	if channels.Suggestions != "" {
		return channels.Suggestions
	}
	return config.Get().SuggestionsChannelID
}

func resolveChannel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	if ch, err := s.State.Channel(channelID); err == nil {
		return ch, nil
	}
	return s.Channel(channelID)
}
