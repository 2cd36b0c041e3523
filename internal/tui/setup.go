package tui

import (
	"github.com/theirongolddev/finroi/internal/config"
	"github.com/theirongolddev/finroi/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	Theme  string
	Format string
	Save   bool
}

// NewSetupValues seeds the form from cfg so unchanged answers keep their value.
func NewSetupValues(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:  theme.ByName(cfg.Appearance.Theme).Name,
		Format: cfg.General.Format,
		Save:   true,
	}
}

// Apply copies the answers onto cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	if v.Format != "" {
		cfg.General.Format = v.Format
	}
	return cfg
}

// NewSetupForm builds the setup form bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.Theme),
			huh.NewSelect[string]().
				Title("Default output for `finroi estimate`").
				Options(
					huh.NewOption("Table", config.FormatTable),
					huh.NewOption("JSON", config.FormatJSON),
				).
				Value(&vals.Format),
			huh.NewConfirm().
				Title("Save to " + config.Path() + "?").
				Value(&vals.Save),
		),
	).WithShowHelp(true)
}

// LoadSetupDefaults returns answers seeded from the current config,
// falling back to defaults when the config cannot be read.
func LoadSetupDefaults() SetupValues {
	return NewSetupValues(loadConfigOrDefault())
}
