// Package cli implements the lamp command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/lamp/internal/log"
	"github.com/mesh-intelligence/lamp/internal/paths"
	"github.com/mesh-intelligence/lamp/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// cli is the state shared by one command tree. NewRootCmd builds a fresh one
// so tests can run commands repeatedly.
type cli struct {
	flags     rootFlags
	configDir string
	settings  *viper.Viper
}

// NewRootCmd creates the top-level "lamp" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "lamp",
		Short: "A devotional Bible reader",
		Long: "Lamp reads a curated King James catalog and keeps your highlights, notes,\n" +
			"bookmarks and reading history on this machine.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&c.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.lamp-db)")
	root.PersistentFlags().BoolVar(&c.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(c.newInitCmd())
	root.AddCommand(c.newBooksCmd())
	root.AddCommand(c.newChaptersCmd())
	root.AddCommand(c.newReadCmd())
	root.AddCommand(c.newSearchCmd())
	root.AddCommand(c.newTodayCmd())
	root.AddCommand(c.newHighlightCmd())
	root.AddCommand(c.newNoteCmd())
	root.AddCommand(c.newBookmarkCmd())
	root.AddCommand(c.newHistoryCmd())
	root.AddCommand(c.newClearCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	log.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps storage failures to exitSysError and everything else to
// exitUserError.
func exitCode(err error) int {
	if errors.Is(err, types.ErrCatalogInit) || errors.Is(err, errStorage) {
		return exitSysError
	}
	return exitUserError
}

// setup resolves the config directory, loads configuration and initializes
// logging before any subcommand runs.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(c.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	c.configDir = configDir
	c.settings = v
	log.Init(log.Options{
		Level:  v.GetString(cfgKeyLogLevel),
		Format: v.GetString(cfgKeyLogFormat),
		File:   v.GetString(cfgKeyLogFile),
	})
	return nil
}
