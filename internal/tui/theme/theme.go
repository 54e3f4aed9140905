// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Subtle highlight, empty grid cells
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Completed tasks, hour marks
	Accent      string `toml:"accent"`       // Title, borders, today marker
	Block       string `toml:"block"`        // Single-task blocks
	Overlap     string `toml:"overlap"`      // Aggregated blocks
	AllDay      string `toml:"all_day"`      // All-day lane entries
	Cursor      string `toml:"cursor"`       // Selected block
	Warning     string `toml:"warning"`      // Errors, delete confirmation
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to dark if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "dark"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "dark" {
			return Load("dark")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// applyDefaults fills any missing colors from the dark palette so a
// partial theme file still renders.
func (t *Theme) applyDefaults() {
	def := darkDefaults()
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&t.Bg, def.Bg)
	fill(&t.BgHighlight, def.BgHighlight)
	fill(&t.Fg, def.Fg)
	fill(&t.FgMuted, def.FgMuted)
	fill(&t.Accent, def.Accent)
	fill(&t.Block, def.Block)
	fill(&t.Overlap, def.Overlap)
	fill(&t.AllDay, def.AllDay)
	fill(&t.Cursor, def.Cursor)
	fill(&t.Warning, def.Warning)
}

func darkDefaults() Theme {
	return Theme{
		Name:        "dark",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Block:       "#a6e3a1",
		Overlap:     "#fab387",
		AllDay:      "#cba6f7",
		Cursor:      "#f5c2e7",
		Warning:     "#f38ba8",
	}
}
