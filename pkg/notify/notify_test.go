package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// fakeSender records sent messages and can simulate closed DMs.
type fakeSender struct {
	failChannel bool
	failSend    bool
	sentTo      string
	sentContent string
}

func (f *fakeSender) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.failChannel {
		return nil, errors.New("cannot open DM")
	}
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func (f *fakeSender) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.failSend {
		return nil, errors.New("user blocks DMs")
	}
	f.sentTo = channelID
	f.sentContent = content
	return &discordgo.Message{ID: "1"}, nil
}

func TestApprovedDelivers(t *testing.T) {
	sender := &fakeSender{}
	res := New(sender).Approved("42", "https://discord.com/channels/1/2/3")

	if !res.Delivered || res.Err != nil {
		t.Fatalf("Approved() = %+v, want delivered without error", res)
	}
	if sender.sentTo != "dm-42" {
		t.Errorf("sent to channel %q, want dm-42", sender.sentTo)
	}
	if !strings.Contains(sender.sentContent, "aprobada") || !strings.Contains(sender.sentContent, "channels/1/2/3") {
		t.Errorf("content = %q, want approval text with jump link", sender.sentContent)
	}
}

func TestDeniedWithReason(t *testing.T) {
	sender := &fakeSender{}
	res := New(sender).Denied("42", "duplicada")

	if !res.Delivered {
		t.Fatalf("Denied() = %+v, want delivered", res)
	}
	if !strings.Contains(sender.sentContent, "denegada") || !strings.Contains(sender.sentContent, "Razón: duplicada") {
		t.Errorf("content = %q, want denial text with reason", sender.sentContent)
	}
}

func TestDeniedWithoutReason(t *testing.T) {
	sender := &fakeSender{}
	New(sender).Denied("42", "")

	if strings.Contains(sender.sentContent, "Razón") {
		t.Errorf("content = %q, must not include an empty reason line", sender.sentContent)
	}
}

func TestFailuresAreReturnedNotRaised(t *testing.T) {
	res := New(&fakeSender{failChannel: true}).Approved("42", "url")
	if res.Delivered || res.Err == nil {
		t.Errorf("closed DM channel: result = %+v, want undelivered with error", res)
	}

	res = New(&fakeSender{failSend: true}).Denied("42", "")
	if res.Delivered || res.Err == nil {
		t.Errorf("blocked DMs: result = %+v, want undelivered with error", res)
	}
}
