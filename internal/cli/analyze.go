package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/classgraph/pkg/config"
	"github.com/matzehuels/classgraph/pkg/pipeline"
)

// analyze runs the pipeline on the project at args[0] (default ".").
func (c *CLI) analyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	opts := pipeline.FromConfig(root, cfg)
	opts.Logger = logger

	prog := newProgress(logger)
	result, err := c.newRunner(logger, !cfg.Cache.Enabled).Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Analyzed %d files", result.Stats.Scanned))

	out := cmd.OutOrStdout()
	printSuccess(out, "Class graph written")
	printFile(out, result.Output)
	printStats(out, result.Stats)
	if n := result.Stats.Failed; n > 0 {
		printWarning(out, "%d unreadable files left out", n)
	}
	return nil
}
