package commands

import (
	"github.com/spf13/cobra"
	"ptr/internal/config"
	"ptr/internal/storage"
	"ptr/internal/ui"
)

// LastCommand handles the last command
type LastCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewLastCommand creates a new LastCommand
func NewLastCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *LastCommand {
	return &LastCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *LastCommand) Execute(cmd *cobra.Command, args []string) error {
	meta, err := lc.storage.LoadRun()
	if err != nil {
		return err
	}

	lc.formatter.PrintRunMeta(meta)
	return nil
}
