package gui

import (
	"github.com/openneighborhood/neighborhood/internal/config"
)

// Run launches GUI mode with the default configuration file.
func Run() error {
	if err := checkDisplay(); err != nil {
		return err
	}
	cfg, err := config.Resolve("", "", 0, false)
	if err != nil {
		return err
	}
	return LaunchGUI(cfg)
}
