package commands

import (
	"ptr/internal/config"
	"ptr/internal/resolver"
	"ptr/internal/ui"

	"github.com/spf13/cobra"
)

// ResolveCommand handles the resolve command
type ResolveCommand struct {
	config    *config.Config
	resolver  *resolver.Resolver
	formatter *ui.Formatter
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(cfg *config.Config, res *resolver.Resolver, formatter *ui.Formatter) *ResolveCommand {
	return &ResolveCommand{
		config:    cfg,
		resolver:  res,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *ResolveCommand) Execute(cmd *cobra.Command, args []string) error {
	nodes, err := rc.resolver.Resolve(rc.config.GetTestPath(), args)
	if err != nil {
		return err
	}

	rc.formatter.PrintNodes(nodes)
	return nil
}
