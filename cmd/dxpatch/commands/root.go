// Package commands implements the CLI commands for dxpatch.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/dxpatch/internal/app"
	"go.trai.ch/dxpatch/internal/build"
	"go.trai.ch/dxpatch/internal/core/domain"
)

// CLI represents the command line interface for dxpatch.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Plan(ctx context.Context, opts app.Options) (*app.Result, error)
	Install(ctx context.Context, opts app.Options) (*app.Result, error)
	Boards(ctx context.Context, opts app.Options) (*app.Result, error)
	Fetch(ctx context.Context, opts app.Options) (*app.Result, error)
	Clean(ctx context.Context, opts app.Options) (*app.Result, error)
	SetVerbose(enabled bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dxpatch",
		Short:         "Install AVR Dx device packs into a PlatformIO toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Declared before the default flags so -v stays with --verbose.
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", domain.ConfigFileName, "Path to configuration file")
	flags.String("toolchain", "", "Root of the installed AVR toolchain")
	flags.String("gcc-version", "", "Compiler version receiving device-specs files")
	flags.String("boards-dir", "", "Directory the boards/ descriptors are written under")
	flags.String("template", "", "Board descriptor template")
	flags.StringArray("source", nil, "Extracted pack directory (repeatable); skips fetching")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.app.SetVerbose(verbose)
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newBoardsCmd())
	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options reads the persistent flags into app options.
func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	toolchain, _ := flags.GetString("toolchain")
	gccVersion, _ := flags.GetString("gcc-version")
	boardsDir, _ := flags.GetString("boards-dir")
	template, _ := flags.GetString("template")
	sources, _ := flags.GetStringArray("source")

	return app.Options{
		ConfigPath: configPath,
		Toolchain:  toolchain,
		GCCVersion: gccVersion,
		BoardsDir:  boardsDir,
		Template:   template,
		Sources:    sources,
	}
}
