package suggest

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancySuggestGo/pkg/config"
	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/feed"
	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
)

const (
	modalPrefix  = "suggest_modal"
	modalInputID = "suggest_text"

	// Discord caps string options at this length; the modal and the
	// prefix command accept longer texts.
	maxOptionLength = 1000
)

// ErrNoStaffChannel means no staff channel is configured for the guild,
// so there is nowhere to submit suggestions to.
var ErrNoStaffChannel = errors.New("no hay canal de staff configurado")

// ErrBlocked means the author is on the guild's blocklist.
var ErrBlocked = errors.New("autor bloqueado")

func createSuggestCommand() *discord.Command {
	return discord.NewCommand(
		"suggest",
		"Envía una sugerencia al staff del servidor",
		"suggest",
		suggestHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "texto",
			Description: "El texto de tu sugerencia",
			Required:    false,
			MaxLength:   maxOptionLength,
		},
	).WithBlocklistCheck()
}

// suggestHandler handles /suggest. With a texto option the suggestion is
// submitted directly; without it a modal form is opened instead.
func suggestHandler(ctx *discord.CommandContext) error {
	text := ctx.GetStringOption("texto")
	if text == "" {
		return ctx.ShowModal(modalPrefix, "💡 Nueva Sugerencia",
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    modalInputID,
						Label:       "Tu sugerencia",
						Style:       discordgo.TextInputParagraph,
						Placeholder: "Describe tu sugerencia...",
						Required:    true,
						MaxLength:   maxOptionLength,
					},
				},
			},
		)
	}

	return respondSubmission(ctx, text)
}

// suggestModalHandler receives the modal form submission.
func suggestModalHandler(ctx *discord.CommandContext, customID string) {
	text := ctx.GetModalInput(modalInputID)
	if text == "" {
		ctx.ReplyEphemeral("❌ La sugerencia no puede estar vacía.")
		return
	}
	if err := respondSubmission(ctx, text); err != nil {
		logger.Error(fmt.Sprintf("Error respondiendo al modal %s: %v", customID, err), "Suggest")
	}
}

func respondSubmission(ctx *discord.CommandContext, text string) error {
	id, err := Submit(ctx.Session, ctx.Interaction.GuildID, ctx.User(), text)
	switch {
	case errors.Is(err, ErrBlocked):
		return ctx.ReplyEphemeral("🚫 Has sido bloqueado del buzón de sugerencias de este servidor.")
	case errors.Is(err, ErrNoStaffChannel):
		return ctx.ReplyEphemeral("❌ Este servidor aún no tiene configurado un canal de staff. Pide a un administrador que use `/staff canal`.")
	case err != nil:
		return ctx.ReplyEphemeral("❌ No se pudo guardar tu sugerencia. Inténtalo de nuevo más tarde.")
	}
	return ctx.ReplyEphemeral(fmt.Sprintf("✅ ¡Sugerencia **#%d** enviada! El staff la revisará pronto.", id))
}

// Submit runs the full submission flow for a guild: it posts the review
// message to the staff channel, records the suggestion as pending and
// publishes a feed event. It returns the assigned id.
//
// The staff message is posted before the record exists, so the id is
// patched into it afterwards; an edit failure only loses the label.
func Submit(s *discordgo.Session, guildID string, author *discordgo.User, text string) (int64, error) {
	st := store.Get()
	if st.IsBlocked(guildID, author.ID) {
		return 0, ErrBlocked
	}

	staffChannel := StaffChannelFor(guildID)
	if staffChannel == "" {
		return 0, ErrNoStaffChannel
	}

	msg, err := s.ChannelMessageSendEmbed(staffChannel, staffEmbed(0, author, text))
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo publicar en el canal de staff %s: %v", staffChannel, err), "Suggest")
		return 0, fmt.Errorf("error publicando en el canal de staff: %w", err)
	}

	id, err := st.Submit(guildID, author.ID, text, msg.ID)
	if err != nil {
		return 0, err
	}

	if _, err := s.ChannelMessageEditEmbed(staffChannel, msg.ID, staffEmbed(id, author, text)); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo editar el mensaje de staff %s: %v", msg.ID, err), "Suggest")
	}

	feed.Get().Publish(feed.EventSubmitted, guildID, id, author.ID)
	logger.Info(fmt.Sprintf("Sugerencia #%d enviada por %s en %s", id, author.Username, guildID), "Suggest")
	return id, nil
}

func staffEmbed(id int64, author *discordgo.User, text string) *discordgo.MessageEmbed {
	title := "📩 Nueva Sugerencia"
	if id > 0 {
		title = fmt.Sprintf("📩 Sugerencia #%d", id)
	}
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: text,
		Color:       0x00AAFF,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    author.Username,
			IconURL: author.AvatarURL(""),
		},
	}
	if id > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Usa /staff aprobar id:%d o /staff denegar id:%d", id, id),
		}
	}
	return embed
}

// StaffChannelFor resolves the staff channel for a guild, falling back to
// the global STAFF_CHANNEL_ID for single-guild deployments.
func StaffChannelFor(guildID string) string {
	if ch := store.Get().Channels(guildID).Staff; ch != "" {
		return ch
	}
	return config.Get().StaffChannelID
}
