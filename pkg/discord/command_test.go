package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestShowModalExists verifies that the ShowModal method exists
// and has the correct signature (compile-time check)
func TestShowModalExists(t *testing.T) {
	type showModalFunc func(*CommandContext, string, string, ...discordgo.MessageComponent) error

	var _ showModalFunc = (*CommandContext).ShowModal

	t.Log("✅ ShowModal method exists with correct signature")
}

func TestCommandBuilder(t *testing.T) {
	cmd := NewCommand("probar", "Comando de prueba", "test", func(ctx *CommandContext) error {
		return nil
	}).WithUserPermissions(discordgo.PermissionManageMessages).WithBlocklistCheck()

	if cmd.Name != "probar" {
		t.Errorf("Name = %v, want probar", cmd.Name)
	}
	if cmd.UserPermissions != discordgo.PermissionManageMessages {
		t.Errorf("UserPermissions = %v, want ManageMessages", cmd.UserPermissions)
	}
	if !cmd.CheckBlocklist {
		t.Error("CheckBlocklist = false, want true after WithBlocklistCheck()")
	}

	appCmd := cmd.ToApplicationCommand()
	if appCmd.Name != "probar" || appCmd.Description != "Comando de prueba" {
		t.Errorf("ToApplicationCommand() = %+v, want name/description preserved", appCmd)
	}
}

func TestFindOption(t *testing.T) {
	options := []*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name: "grupo",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "anidada", Type: discordgo.ApplicationCommandOptionString},
			},
		},
	}

	if found := findOption(options, "anidada"); found == nil {
		t.Error("findOption() did not find the nested option")
	}
	if found := findOption(options, "inexistente"); found != nil {
		t.Error("findOption() returned a match for a missing option")
	}
}
