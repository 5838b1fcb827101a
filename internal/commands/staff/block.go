package staff

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
)

func createBlockCommand() *discord.Command {
	return discord.NewCommand(
		"bloquear",
		"Bloquea a un usuario del buzón de sugerencias",
		"staff",
		blockHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "El usuario a bloquear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Motivo del bloqueo (solo queda en el registro)",
			Required:    false,
			MaxLength:   500,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

func blockHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Usuario inválido.")
	}

	if err := store.Get().BlockAuthor(ctx.Interaction.GuildID, user.ID); err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo guardar el bloqueo. Inténtalo de nuevo más tarde.")
	}
	if reason := ctx.GetStringOption("razon"); reason != "" {
		logger.Info(fmt.Sprintf("Usuario %s bloqueado en %s: %s", user.ID, ctx.Interaction.GuildID, reason), "Staff")
	}
	return ctx.Reply(fmt.Sprintf("🚫 <@%s> ya no puede enviar sugerencias en este servidor.", user.ID))
}

func createUnblockCommand() *discord.Command {
	return discord.NewCommand(
		"desbloquear",
		"Desbloquea a un usuario del buzón de sugerencias",
		"staff",
		unblockHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "El usuario a desbloquear",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

func unblockHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Usuario inválido.")
	}

	if err := store.Get().UnblockAuthor(ctx.Interaction.GuildID, user.ID); err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo guardar el cambio. Inténtalo de nuevo más tarde.")
	}
	return ctx.Reply(fmt.Sprintf("✅ <@%s> puede volver a enviar sugerencias.", user.ID))
}
