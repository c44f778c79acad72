package interact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	if !km.IsNext(keyEv(tcell.KeyTab, 0, 0)) {
		t.Error("Tab should match next")
	}
	if !km.IsPrev(keyEv(tcell.KeyBacktab, 0, 0)) {
		t.Error("Backtab should match prev")
	}
	if !km.IsActivate(keyEv(tcell.KeyEnter, 0, 0)) {
		t.Error("Enter should activate")
	}
	if !km.IsActivate(keyEv(tcell.KeyRune, ' ', 0)) {
		t.Error("Space should activate")
	}
	if !km.IsClose(keyEv(tcell.KeyEscape, 0, 0)) {
		t.Error("Escape should close")
	}
	if km.IsNext(keyEv(tcell.KeyRune, 'n', 0)) {
		t.Error("Plain rune should not match next")
	}
}

func writeKeymap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keys.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadKeymap(t *testing.T) {
	path := writeKeymap(t, "next: ctrl+n\nprev: ctrl+p\n")

	km, err := LoadKeymap(path)
	if err != nil {
		t.Fatalf("LoadKeymap: %v", err)
	}
	if !km.IsNext(keyEv(tcell.KeyCtrlN, 0, tcell.ModCtrl)) {
		t.Error("Ctrl+N should match rebound next")
	}
	if km.IsNext(keyEv(tcell.KeyTab, 0, 0)) {
		t.Error("Tab no longer bound to next")
	}
	// Unspecified fields keep defaults.
	if !km.IsClose(keyEv(tcell.KeyEscape, 0, 0)) {
		t.Error("Close should default to esc")
	}
	if !km.IsActivate(keyEv(tcell.KeyEnter, 0, 0)) {
		t.Error("Activate should default to enter/space")
	}
}

func TestLoadKeymapErrors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		if _, err := LoadKeymap(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("Unknown key name", func(t *testing.T) {
		path := writeKeymap(t, "next: hyperkey\n")
		if _, err := LoadKeymap(path); err == nil {
			t.Error("Expected error for unknown key name")
		}
	})

	t.Run("Malformed yaml", func(t *testing.T) {
		path := writeKeymap(t, "next: [unclosed\n")
		if _, err := LoadKeymap(path); err == nil {
			t.Error("Expected parse error")
		}
	})
}

func TestKeymapSingleRuneBinding(t *testing.T) {
	km := DefaultKeymap()
	km.Close = "q"
	if err := km.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !km.IsClose(keyEv(tcell.KeyRune, 'q', 0)) {
		t.Error("q should match close")
	}
	if km.IsClose(keyEv(tcell.KeyEscape, 0, 0)) {
		t.Error("esc no longer bound")
	}
}
