package staff

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/feed"
	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/models"
	"github.com/PancyStudios/PancySuggestGo/pkg/notify"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
)

func createDenyCommand() *discord.Command {
	return discord.NewCommand(
		"denegar",
		"Deniega una sugerencia pendiente",
		"staff",
		denyHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "id",
			Description: "El número de la sugerencia",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Motivo de la denegación (se envía al autor)",
			Required:    false,
			MaxLength:   500,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

func denyHandler(ctx *discord.CommandContext) error {
	id := ctx.GetIntOption("id")
	reason := ctx.GetStringOption("razon")

	_, dm, err := Deny(ctx.Session, ctx.Interaction.GuildID, id, reason)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No hay ninguna sugerencia pendiente con el id **%d**.", id))
	case err != nil:
		return ctx.ReplyEphemeral("❌ No se pudo denegar la sugerencia. Inténtalo de nuevo más tarde.")
	}

	reply := fmt.Sprintf("🗑️ Sugerencia **#%d** denegada.", id)
	if !dm.Delivered {
		reply += " (No se pudo avisar al autor por DM.)"
	}
	return ctx.Reply(reply)
}

// Deny removes a pending suggestion and notifies its author. Nothing is
// posted publicly; the DM is best effort.
func Deny(s *discordgo.Session, guildID string, id int64, reason string) (*models.SuggestionRecord, notify.Result, error) {
	rec, err := store.Get().Deny(guildID, id)
	if err != nil {
		return nil, notify.Result{}, err
	}

	dm := notify.New(s).Denied(rec.AuthorID, reason)
	feed.Get().Publish(feed.EventDenied, guildID, id, rec.AuthorID)
	logger.Info(fmt.Sprintf("Sugerencia #%d denegada en %s", id, guildID), "Staff")
	return rec, dm, nil
}
