package utils

import (
	"fmt"

	"github.com/PancyStudios/PancySuggestGo/pkg/config"
	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/errors"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra el estado del bot",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		backend := "📄 JSON"
		if config.Get().UseMongo() {
			if latency, err := store.Get().Ping(); err != nil {
				backend = "🔴 MongoDB (sin conexión)"
			} else {
				backend = fmt.Sprintf("🍃 MongoDB (%dms)", latency.Milliseconds())
			}
		}
		guilds, pending := store.Get().Stats()

		ctx.Reply(fmt.Sprintf(
			"📊 **Estado del Bot**\n"+
				"• Bot: 🟢 Online\n"+
				"• Almacén: %s (%d servidores, %d sugerencias pendientes)\n"+
				"• Servidores conectados: %d",
			backend,
			guilds,
			pending,
			ctx.Client.GuildCount(),
		))
	}()
	return nil
}
