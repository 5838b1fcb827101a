// Package main is the entry point for the PancySuggest Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PancyStudios/PancySuggestGo/internal/commands"
	"github.com/PancyStudios/PancySuggestGo/internal/events"
	"github.com/PancyStudios/PancySuggestGo/pkg/config"
	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/errors"
	"github.com/PancyStudios/PancySuggestGo/pkg/feed"
	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/mqtt"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
	"github.com/PancyStudios/PancySuggestGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando PancySuggest Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize the suggestion store with the configured backend
	var writer store.ScopeWriter
	var mongoWriter *store.MongoWriter
	if cfg.UseMongo() {
		mongoWriter, err = store.NewMongoWriter(cfg.MongoDBURL, cfg.DBName)
		if err != nil {
			logger.Critical(fmt.Sprintf("Error conectando a MongoDB: %v", err), "Main")
			os.Exit(1)
		}
		writer = mongoWriter
	} else {
		writer = store.NewFileWriter(cfg.PendingFile)
	}
	defer func() {
		if mongoWriter != nil {
			err := mongoWriter.Disconnect()
			if err != nil {
				return
			}
		}
	}()

	if _, err := store.Init(writer); err != nil {
		logger.Critical(fmt.Sprintf("Error cargando el almacén de sugerencias: %v", err), "Main")
		os.Exit(1)
	}

	// Initialize the live event feed
	feedHub := feed.Init()

	// Initialize MQTT (optional)
	if cfg.MQTTHost != "" {
		mqttClientID := "pancysuggest"
		if !cfg.IsProd() {
			mqttClientID = "pancysuggest_canary"
		}

		mqttClient := mqtt.Init(
			cfg.MQTTHost,
			cfg.MQTTPort,
			cfg.MQTTUser,
			cfg.MQTTPassword,
			mqttClientID,
		)
		defer mqttClient.Destroy()

		// Expose the pending counters over the request topic
		mqttClient.On("pending_count", func(payload map[string]interface{}) (interface{}, error) {
			guilds, pending := store.Get().Stats()
			return map[string]int{"guilds": guilds, "pending": pending}, nil
		})

		// Bridge lifecycle events to the broker
		feedEvents, _ := feedHub.Subscribe()
		go func() {
			defer errors.RecoverMiddleware()()
			for ev := range feedEvents {
				if !mqttClient.IsConnected() {
					continue
				}
				topic := fmt.Sprintf("suggest/events/%s", ev.GuildID)
				if err := mqttClient.Publish(topic, ev); err != nil {
					logger.Debug(fmt.Sprintf("Error publicando evento MQTT: %v", err), "Main")
				}
			}
		}()
	}

	// Initialize web server
	webServer := web.Init()
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands using the commands package
	commands.RegisterAll(discordClient)

	// Register events using the events package
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {

		}
	}(discordClient)

	logger.Success("PancySuggest Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando PancySuggest Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
