package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriterMissingFileIsEmptyStore(t *testing.T) {
	w := NewFileWriter(filepath.Join(t.TempDir(), "pending.json"))

	guilds, err := w.Load()
	if err != nil {
		t.Fatalf("Load() on missing file returned error: %v", err)
	}
	if len(guilds) != 0 {
		t.Errorf("Load() on missing file = %d guilds, want 0", len(guilds))
	}
}

func TestFileWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pending.json")

	s, err := New(NewFileWriter(path))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	s.Submit("G1", "42", "Add dark mode", "m1")
	s.Submit("G1", "43", "Más emojis", "m2")
	s.Submit("G2", "44", "otra cosa", "m3")
	s.SetChannel("G1", RoleStaff, "555")
	s.SetChannel("G1", RolePublic, "777")
	s.BlockAuthor("G2", "99")
	s.Deny("G1", 1)

	// Reload from disk and compare observable state
	reloaded, err := New(NewFileWriter(path))
	if err != nil {
		t.Fatalf("reload New() returned error: %v", err)
	}

	g1 := reloaded.ListPending("G1")
	if len(g1) != 1 || g1[0].ID != 2 || g1[0].AuthorID != "43" || g1[0].Text != "Más emojis" || g1[0].StaffMsgID != "m2" {
		t.Errorf("reloaded G1 pending = %+v, want single record id 2 by author 43", g1)
	}
	if got := reloaded.ListPending("G2"); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("reloaded G2 pending = %+v, want single record id 1", got)
	}

	ch := reloaded.Channels("G1")
	if ch.Staff != "555" || ch.Public != "777" || ch.Suggestions != "" {
		t.Errorf("reloaded G1 channels = %+v, want staff 555, public 777", ch)
	}
	if !reloaded.IsBlocked("G2", "99") {
		t.Error("reloaded store lost the G2 blocklist entry")
	}

	// The id counter must survive the reload
	id, _ := reloaded.Submit("G1", "50", "nueva", "m4")
	if id != 3 {
		t.Errorf("id after reload = %d, want 3", id)
	}
}

func TestFileWriterCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pending.json")
	if err := os.WriteFile(path, []byte("{no es json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileWriter(path).Load(); err == nil {
		t.Error("Load() on corrupt file returned nil error")
	}
}

func TestFileWriterCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "pending.json")

	s, err := New(NewFileWriter(path))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if _, err := s.Submit("G1", "42", "hola", "m1"); err != nil {
		t.Fatalf("Submit() returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist after persist: %v", path, err)
	}
}
