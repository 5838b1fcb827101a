package staff

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/models"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
)

// Display caps for the pending list. The store returns everything; only
// the rendering truncates.
const (
	listCap    = 10
	snippetLen = 150
)

func createPendingCommand() *discord.Command {
	return discord.NewCommand(
		"pendientes",
		"Muestra las sugerencias pendientes de revisión",
		"staff",
		pendingHandler,
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

func pendingHandler(ctx *discord.CommandContext) error {
	records := store.Get().ListPending(ctx.Interaction.GuildID)
	if len(records) == 0 {
		return ctx.ReplyEphemeral("📭 No hay sugerencias pendientes.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📋 Sugerencias Pendientes (%d)", len(records)),
		Description: RenderPending(records),
		Color:       0xFEE75C,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	return ctx.ReplyEphemeralEmbed(embed)
}

// RenderPending formats pending records for display, capped at listCap
// entries with snippets of at most snippetLen characters.
func RenderPending(records []models.SuggestionRecord) string {
	var b strings.Builder
	for i, rec := range records {
		if i == listCap {
			fmt.Fprintf(&b, "… y %d más.", len(records)-listCap)
			break
		}
		fmt.Fprintf(&b, "**#%d** <@%s>: %s\n", rec.ID, rec.AuthorID, snippet(rec.Text))
	}
	return strings.TrimRight(b.String(), "\n")
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLen {
		return text
	}
	return string(runes[:snippetLen]) + "…"
}
