package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdpress/mdpress/config"
	"github.com/mdpress/mdpress/markdown"
	"github.com/mdpress/mdpress/posts"
	"github.com/mdpress/mdpress/site"
)

var rootCmd = &cobra.Command{
	Use:   "mdpress <source> <destination>",
	Short: "Render a directory of markdown posts into a static HTML site",
	Long: `mdpress reads the .md files directly inside <source>, parses the
header at the top of each (title, publication date, optional draft
marker) and writes one HTML page per non-draft post plus a sorted index
into <destination>. The destination is replaced on every run.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true, // main prints the error once itself
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	// past here failures are runtime errors, not usage errors
	cmd.SilenceUsage = true

	source, dest := args[0], args[1]
	cfg, err := config.Load(source)
	if err != nil {
		return err
	}
	slog.Info("Variables",
		"source", source,
		"destination", dest,
		"site", cfg.Name,
	)

	loaded, err := posts.Load(source)
	if err != nil {
		return err
	}
	generator := site.Generator{Config: cfg, Markdown: markdown.Default()}
	if err := generator.Generate(loaded, dest); err != nil {
		return err
	}
	static, err := posts.Passthrough(source)
	if err != nil {
		return err
	}
	return site.CopyStatic(static, dest)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, err.Error()+"\n")
		os.Exit(1)
	}
}
