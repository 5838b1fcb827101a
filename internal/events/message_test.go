package events

import "testing"

func TestParsePrefixCommand(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantName string
		wantArgs string
		wantOK   bool
	}{
		{"sin prefijo", "hola bot", "", "", false},
		{"solo prefijo", "!", "", "", false},
		{"comando sin args", "!list_pending", "list_pending", "", true},
		{"comando con args", "!suggest añadir un canal de memes", "suggest", "añadir un canal de memes", true},
		{"mayúsculas", "!SUGGEST hola", "suggest", "hola", true},
		{"espacios extra", "!deny   12   spam", "deny", "12   spam", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, ok := parsePrefixCommand(tt.content, "!")
			if name != tt.wantName || args != tt.wantArgs || ok != tt.wantOK {
				t.Errorf("parsePrefixCommand(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.content, name, args, ok, tt.wantName, tt.wantArgs, tt.wantOK)
			}
		})
	}
}

func TestParseDecisionArgs(t *testing.T) {
	id, reason, err := parseDecisionArgs("12 demasiado spam")
	if err != nil || id != 12 || reason != "demasiado spam" {
		t.Errorf("parseDecisionArgs() = (%d, %q, %v), want (12, \"demasiado spam\", nil)", id, reason, err)
	}

	id, reason, err = parseDecisionArgs("#7")
	if err != nil || id != 7 || reason != "" {
		t.Errorf("parseDecisionArgs(\"#7\") = (%d, %q, %v), want (7, \"\", nil)", id, reason, err)
	}

	if _, _, err := parseDecisionArgs(""); err == nil {
		t.Error("parseDecisionArgs(\"\") no devolvió error")
	}
	if _, _, err := parseDecisionArgs("abc"); err == nil {
		t.Error("parseDecisionArgs(\"abc\") no devolvió error")
	}
}
