// Package events provides event handlers for message events
package events

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PancyStudios/PancySuggestGo/internal/commands/staff"
	"github.com/PancyStudios/PancySuggestGo/internal/commands/suggest"
	"github.com/PancyStudios/PancySuggestGo/pkg/config"
	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageCreate)
	client.Session.AddHandler(onMessageDelete)
}

// onMessageCreate handles the legacy prefix commands (!suggest, !approve,
// !deny, !list_pending). The slash commands are the primary surface; the
// prefix variant mainly exists because !suggest has no length cap.
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignorar mensajes de bots y DMs
	if m.Author.Bot || m.GuildID == "" {
		return
	}

	name, args, ok := parsePrefixCommand(m.Content, config.Get().Prefix)
	if !ok {
		return
	}

	switch name {
	case "suggest":
		handlePrefixSuggest(s, m, args)
	case "approve":
		handlePrefixApprove(s, m, args)
	case "deny":
		handlePrefixDeny(s, m, args)
	case "list_pending":
		handlePrefixListPending(s, m)
	}
}

func handlePrefixSuggest(s *discordgo.Session, m *discordgo.MessageCreate, text string) {
	if text == "" {
		reply(s, m, fmt.Sprintf("❌ Uso: `%ssuggest <texto>`", config.Get().Prefix))
		return
	}

	id, err := suggest.Submit(s, m.GuildID, m.Author, text)
	switch {
	case errors.Is(err, suggest.ErrBlocked):
		reply(s, m, "🚫 Has sido bloqueado del buzón de sugerencias de este servidor.")
	case errors.Is(err, suggest.ErrNoStaffChannel):
		reply(s, m, "❌ Este servidor aún no tiene configurado un canal de staff.")
	case err != nil:
		reply(s, m, "❌ No se pudo guardar tu sugerencia. Inténtalo de nuevo más tarde.")
	default:
		reply(s, m, fmt.Sprintf("✅ ¡Sugerencia **#%d** enviada! El staff la revisará pronto.", id))
	}
}

func handlePrefixApprove(s *discordgo.Session, m *discordgo.MessageCreate, args string) {
	if !isStaff(s, m) {
		return
	}
	id, _, err := parseDecisionArgs(args)
	if err != nil {
		reply(s, m, fmt.Sprintf("❌ Uso: `%sapprove <id>`", config.Get().Prefix))
		return
	}

	result, err := staff.Approve(s, m.GuildID, id)
	switch {
	case errors.Is(err, staff.ErrNoPublicChannel):
		reply(s, m, "❌ No hay un canal público configurado o no es accesible.")
	case errors.Is(err, store.ErrNotFound):
		reply(s, m, fmt.Sprintf("❌ No hay ninguna sugerencia pendiente con el id **%d**.", id))
	case err != nil:
		reply(s, m, "❌ No se pudo aprobar la sugerencia. Inténtalo de nuevo más tarde.")
	case result.PostErr != nil:
		reply(s, m, fmt.Sprintf("⚠️ Sugerencia **#%d** aprobada, pero no se pudo publicar en el canal público.", id))
	default:
		reply(s, m, fmt.Sprintf("✅ Sugerencia **#%d** aprobada y publicada.", id))
	}
}

func handlePrefixDeny(s *discordgo.Session, m *discordgo.MessageCreate, args string) {
	if !isStaff(s, m) {
		return
	}
	id, reason, err := parseDecisionArgs(args)
	if err != nil {
		reply(s, m, fmt.Sprintf("❌ Uso: `%sdeny <id> [razón]`", config.Get().Prefix))
		return
	}

	_, _, err = staff.Deny(s, m.GuildID, id, reason)
	switch {
	case errors.Is(err, store.ErrNotFound):
		reply(s, m, fmt.Sprintf("❌ No hay ninguna sugerencia pendiente con el id **%d**.", id))
	case err != nil:
		reply(s, m, "❌ No se pudo denegar la sugerencia. Inténtalo de nuevo más tarde.")
	default:
		reply(s, m, fmt.Sprintf("🗑️ Sugerencia **#%d** denegada.", id))
	}
}

func handlePrefixListPending(s *discordgo.Session, m *discordgo.MessageCreate) {
	if !isStaff(s, m) {
		return
	}

	records := store.Get().ListPending(m.GuildID)
	if len(records) == 0 {
		reply(s, m, "📭 No hay sugerencias pendientes.")
		return
	}
	reply(s, m, fmt.Sprintf("📋 **Sugerencias Pendientes (%d)**\n%s", len(records), staff.RenderPending(records)))
}

// parsePrefixCommand splits a message into a prefix command name and its
// raw argument string. ok is false for messages without the prefix.
func parsePrefixCommand(content, prefix string) (name, args string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", "", false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(content, prefix))
	if rest == "" {
		return "", "", false
	}
	parts := strings.SplitN(rest, " ", 2)
	name = strings.ToLower(parts[0])
	if len(parts) == 2 {
		args = strings.TrimSpace(parts[1])
	}
	return name, args, true
}

// parseDecisionArgs extracts a suggestion id and an optional trailing
// reason from the argument string. A leading # on the id is accepted.
func parseDecisionArgs(args string) (int64, string, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, "", fmt.Errorf("falta el id")
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(fields[0], "#"), 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("id inválido: %q", fields[0])
	}
	return id, strings.Join(fields[1:], " "), nil
}

func isStaff(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	perms, err := s.State.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		logger.Debug(fmt.Sprintf("No se pudieron resolver permisos de %s: %v", m.Author.ID, err), "Message")
		return false
	}
	return perms&(discordgo.PermissionManageMessages|discordgo.PermissionAdministrator) != 0
}

func reply(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	if _, err := s.ChannelMessageSendReply(m.ChannelID, content, m.Reference()); err != nil {
		logger.Error(fmt.Sprintf("Error enviando respuesta: %v", err), "Message")
	}
}

// onMessageDelete is called when a message is deleted
func onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	logger.Debug(fmt.Sprintf("🗑️ Mensaje eliminado: ID %s en canal %s",
		m.ID, m.ChannelID), "Message")
}
