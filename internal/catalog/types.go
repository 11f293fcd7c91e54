package catalog

import (
	"strings"

	"github.com/abhisek/shortcutmaster/internal/keys"
)

// OS selects which key-set variant and labels a task uses.
type OS string

const (
	OSWindows OS = "windows"
	OSMac     OS = "mac"
)

// ParseOS accepts "windows"/"win" and "mac"/"macos"/"darwin".
func ParseOS(s string) (OS, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "win":
		return OSWindows, true
	case "mac", "macos", "darwin", "osx":
		return OSMac, true
	}
	return "", false
}

// Category groups quiz shortcuts.
type Category string

const (
	CategoryAll     Category = "All"
	CategoryGeneral Category = "General"
	CategoryExcel   Category = "Excel"
	CategoryWord    Category = "Word"
	CategoryBrowser Category = "Browser"
)

// Shortcut is a quiz task: perform the key combination for Task.
type Shortcut struct {
	ID         string   `json:"id"`
	Category   Category `json:"category"`
	Task       string   `json:"task"`
	WinKeys    []string `json:"win_keys"`
	MacKeys    []string `json:"mac_keys"`
	WinDisplay []string `json:"win_display"`
	MacDisplay []string `json:"mac_display"`
}

// Keys returns the normalized target key set for the given OS.
func (s Shortcut) Keys(os OS) keys.Set {
	if os == OSMac {
		return keys.NewSet(s.MacKeys...)
	}
	return keys.NewSet(s.WinKeys...)
}

// Display returns the key labels shown to the player for the given OS.
func (s Shortcut) Display(os OS) []string {
	if os == OSMac {
		return s.MacDisplay
	}
	return s.WinDisplay
}

// TaskKind identifies how a practical task is judged complete.
type TaskKind string

const (
	KindCopyPaste       TaskKind = "copy-paste"
	KindCutPaste        TaskKind = "cut-paste"
	KindSelectAllDelete TaskKind = "select-all-delete"
	KindTabNavigation   TaskKind = "tab-navigation"
)

// UsesText reports whether the kind operates on seeded text buffers.
func (k TaskKind) UsesText() bool {
	return k == KindCopyPaste || k == KindCutPaste || k == KindSelectAllDelete
}

// ModifierPlaceholder is replaced in instructions with the OS modifier name.
const ModifierPlaceholder = "{ctrl}"

// PracticalTask is an editing goal performed with the keyboard only.
type PracticalTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Template    string   `json:"instruction"`
	Kind        TaskKind `json:"kind"`
	InitialText string   `json:"initial_text,omitempty"`
}

// Instruction renders the template with the OS modifier label.
func (p PracticalTask) Instruction(os OS) string {
	label := "Ctrl"
	if os == OSMac {
		label = "Cmd"
	}
	return strings.ReplaceAll(p.Template, ModifierPlaceholder, label)
}
