package interact

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Keymap holds the traversal and activation bindings an application uses to
// drive the focus ring and container delegation. Key names are lowercase:
// named keys (tab, backtab, enter, esc, space, up, down, left, right, home,
// end, delete), ctrl chords (ctrl+n), or a single printable character.
type Keymap struct {
	Next     string   `yaml:"next"`
	Prev     string   `yaml:"prev"`
	Activate []string `yaml:"activate"`
	Close    string   `yaml:"close"`
}

// DefaultKeymap returns the conventional bindings: Tab/Shift+Tab traversal,
// Enter or Space activation, Escape for container boundaries.
func DefaultKeymap() Keymap {
	return Keymap{
		Next:     "tab",
		Prev:     "backtab",
		Activate: []string{"enter", "space"},
		Close:    "esc",
	}
}

// LoadKeymap reads bindings from a YAML file. Missing fields keep their
// defaults; an unknown key name is an error.
func LoadKeymap(path string) (Keymap, error) {
	km := DefaultKeymap()
	data, err := os.ReadFile(path)
	if err != nil {
		return km, fmt.Errorf("keymap: %w", err)
	}
	if err := yaml.Unmarshal(data, &km); err != nil {
		return km, fmt.Errorf("keymap: parse %s: %w", path, err)
	}
	if err := km.Validate(); err != nil {
		return km, fmt.Errorf("keymap: %s: %w", path, err)
	}
	return km, nil
}

// Validate checks that every bound name is recognized.
func (k Keymap) Validate() error {
	names := append([]string{k.Next, k.Prev, k.Close}, k.Activate...)
	for _, name := range names {
		if !knownKeyName(name) {
			return fmt.Errorf("unknown key name %q", name)
		}
	}
	return nil
}

// IsNext reports whether ev matches the forward-traversal binding.
func (k Keymap) IsNext(ev *tcell.EventKey) bool {
	return matchKeyName(k.Next, ev)
}

// IsPrev reports whether ev matches the backward-traversal binding.
func (k Keymap) IsPrev(ev *tcell.EventKey) bool {
	return matchKeyName(k.Prev, ev)
}

// IsActivate reports whether ev matches any activation binding.
func (k Keymap) IsActivate(ev *tcell.EventKey) bool {
	for _, name := range k.Activate {
		if matchKeyName(name, ev) {
			return true
		}
	}
	return false
}

// IsClose reports whether ev matches the boundary/close binding.
func (k Keymap) IsClose(ev *tcell.EventKey) bool {
	return matchKeyName(k.Close, ev)
}

var namedKeys = map[string]tcell.Key{
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"home":   tcell.KeyHome,
	"end":    tcell.KeyEnd,
	"delete": tcell.KeyDelete,
	"pgup":   tcell.KeyPgUp,
	"pgdn":   tcell.KeyPgDn,
	"insert": tcell.KeyInsert,
}

func knownKeyName(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "tab", "backtab", "space", "backspace":
		return name != ""
	}
	if _, ok := namedKeys[name]; ok {
		return true
	}
	if c, ok := strings.CutPrefix(name, "ctrl+"); ok {
		return len(c) == 1 && c[0] >= 'a' && c[0] <= 'z'
	}
	return len([]rune(name)) == 1
}

func matchKeyName(name string, ev *tcell.EventKey) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "tab":
		return IsTab(ev)
	case "backtab":
		return IsBacktab(ev)
	case "space":
		return IsSpace(ev)
	case "backspace":
		return IsBackspace(ev)
	}
	if key, ok := namedKeys[name]; ok {
		return ev.Key() == key
	}
	if c, ok := strings.CutPrefix(name, "ctrl+"); ok && len(c) == 1 {
		// Ctrl+A..Ctrl+Z map onto contiguous tcell key codes.
		return ev.Key() == tcell.KeyCtrlA+tcell.Key(c[0]-'a')
	}
	if r := []rune(name); len(r) == 1 {
		ch, ok := Char(ev)
		return ok && ch == r[0]
	}
	return false
}
