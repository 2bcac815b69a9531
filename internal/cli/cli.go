// Package cli wires the gameshelf commands: the TUI, the text printer, the MCP server and config checks.
package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gameshelf/internal/catalog"
	"gameshelf/internal/config"
	"gameshelf/internal/logging"
	"gameshelf/internal/mcpserver"
	"gameshelf/internal/nav"
	"gameshelf/internal/output"
	"gameshelf/ui/console"
	"gameshelf/ui/tui"
)

// runTUI is swapped in tests so the root command does not grab the terminal.
var runTUI = tui.Start

type rootFlags struct {
	cfgFile     string
	catalogPath string
	tab         string
}

// New returns the `gameshelf` root command.
func New() *cobra.Command {
	var f rootFlags
	root := &cobra.Command{
		Use:           "gameshelf",
		Short:         "Browse hot and popular games in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, set, err := f.load()
			if err != nil {
				return err
			}
			logger, closer, err := logging.New(cfg.Logging(nil))
			if err != nil {
				return err
			}
			defer closer.Close()

			logger.Info("starting tui", "tab", cfg.InitialTab, "hot", set.Hot.Len(), "popular", set.Popular.Len())
			return runTUI(tui.Options{
				Catalogs:    set,
				CatalogPath: cfg.CatalogPath,
				Router:      cfg.Router(),
				Art:         cfg.Resolver(),
				InitialTab:  cfg.Tab(),
				Logger:      logger,
				Mouse:       cfg.Mouse,
			})
		},
	}

	root.PersistentFlags().StringVar(&f.cfgFile, "config", "", "config file path (yaml, json or toml)")
	root.PersistentFlags().StringVar(&f.catalogPath, "catalog", "", "catalog yaml file (overrides catalog_path)")
	root.PersistentFlags().StringVar(&f.tab, "tab", "", "tab to open: Home, Search or Profile")

	root.AddCommand(newPrintCmd(&f))
	root.AddCommand(newMCPCmd(&f))
	root.AddCommand(newConfigCmd(&f))
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// load reads the config, applies flag overrides and loads the catalogs.
func (f *rootFlags) load() (config.Config, catalog.Set, error) {
	cfg, err := config.Load(f.cfgFile)
	if err != nil {
		return config.Config{}, catalog.Set{}, err
	}
	if f.catalogPath != "" {
		cfg = cfg.WithCatalogPath(f.catalogPath)
	}
	if f.tab != "" {
		t, err := nav.ParseTab(f.tab)
		if err != nil {
			return config.Config{}, catalog.Set{}, err
		}
		cfg = cfg.WithInitialTab(t)
	}

	set, err := catalog.Resolve(cfg.CatalogPath)
	if err != nil {
		return config.Config{}, catalog.Set{}, fmt.Errorf("load catalog: %w", err)
	}
	return cfg, set, nil
}

func newPrintCmd(f *rootFlags) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the screen of a tab as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, set, err := f.load()
			if err != nil {
				return err
			}
			screen := output.Route(cfg.Tab(), set, cfg.Router(), cfg.Resolver())
			if plain {
				console.PrintPlain(cmd.OutOrStdout(), screen)
			} else {
				console.Print(cmd.OutOrStdout(), screen)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}

func newMCPCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the catalogs and tab navigation over MCP (stdio)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, set, err := f.load()
			if err != nil {
				return err
			}
			// stdout carries the protocol
			logger, closer, err := logging.New(cfg.Logging(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := mcpserver.NewServer(mcpserver.Config{
				ServerName:    cfg.Server.Name,
				ServerVersion: cfg.Server.Version,
				Router:        cfg.Router(),
				InitialTab:    cfg.Tab(),
				Render:        console.PrintPlain,
				Logger:        logger,
			}, set, cfg.Resolver())
			defer srv.Close()

			if err := srv.Start(ctx); err != nil && ctx.Err() == nil {
				return fmt.Errorf("mcp server: %w", err)
			}
			return nil
		},
	}
}

func newConfigCmd(f *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Inspect configuration"}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Validate and print effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, set, err := f.load()
			if err != nil {
				return err
			}
			if err := writeYAML(cmd.OutOrStdout(), cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config OK (hot=%d popular=%d)\n", set.Hot.Len(), set.Popular.Len())
			return nil
		},
	})
	return cfgCmd
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
