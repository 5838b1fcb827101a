// Package notify sends best-effort direct messages to suggestion authors.
// Delivery is fire and forget by contract: the caller receives an explicit
// Result it is free to discard, nothing is retried and failures are never
// surfaced to the invoking user.
package notify

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
)

// Sender is the subset of discordgo.Session the notifier needs.
type Sender interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Result describes a notification attempt. Delivered is false when the
// recipient blocks DMs or the transport fails; Err carries the cause.
type Result struct {
	Delivered bool
	Err       error
}

// Notifier sends decision notifications to suggestion authors.
type Notifier struct {
	sender Sender
}

// New creates a Notifier over a Discord session (or any Sender).
func New(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// Approved notifies the author that their suggestion was approved and
// posted publicly.
func (n *Notifier) Approved(userID, jumpURL string) Result {
	return n.send(userID, fmt.Sprintf("✅ Tu sugerencia fue aprobada y publicada: %s", jumpURL))
}

// Denied notifies the author that their suggestion was denied, with an
// optional free-text reason.
func (n *Notifier) Denied(userID, reason string) Result {
	text := "❌ Tu sugerencia fue denegada."
	if reason != "" {
		text += fmt.Sprintf("\nRazón: %s", reason)
	}
	return n.send(userID, text)
}

func (n *Notifier) send(userID, content string) Result {
	channel, err := n.sender.UserChannelCreate(userID)
	if err != nil {
		logger.Debug(fmt.Sprintf("No se pudo abrir DM con %s: %v", userID, err), "Notify")
		return Result{Err: err}
	}
	if _, err := n.sender.ChannelMessageSend(channel.ID, content); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo enviar DM a %s: %v", userID, err), "Notify")
		return Result{Err: err}
	}
	return Result{Delivered: true}
}
