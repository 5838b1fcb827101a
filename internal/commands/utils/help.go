package utils

import (
	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **Ayuda de PancySuggest Go**\n\n" +
				"**Comandos disponibles:**\n" +
				"• `/suggest [texto]` - Envía una sugerencia (sin texto abre un formulario)\n" +
				"• `/staff aprobar <id>` - Aprueba una sugerencia y la publica\n" +
				"• `/staff denegar <id> [razón]` - Deniega una sugerencia\n" +
				"• `/staff pendientes` - Lista las sugerencias pendientes\n" +
				"• `/staff canal <tipo> <canal>` - Configura los canales del buzón\n" +
				"• `/staff bloquear <usuario>` - Bloquea a un usuario del buzón\n" +
				"• `/staff desbloquear <usuario>` - Desbloquea a un usuario\n" +
				"• `/utils ping` - Comprueba la latencia\n" +
				"• `/utils status` - Estado del bot\n" +
				"• `/utils stats` - Estadísticas del bot",
		)
	}()
	return nil
}
