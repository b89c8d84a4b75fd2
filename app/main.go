package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Neev4n/myshell-go/internal/config"
	"github.com/Neev4n/myshell-go/internal/logger"
	"github.com/Neev4n/myshell-go/internal/shell"
	"github.com/Neev4n/myshell-go/pkg/builtin"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		logFile    string
		noColor    bool
	)

	root := &cobra.Command{
		Use:          "myshell",
		Short:        "A minimal interactive command interpreter",
		Long:         "Reads one command per line and runs cat, cd, ls, mkdir, rmdir, rm, pwd, stat, exit and q in-process.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// flags override config file
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if cmd.Flags().Changed("log-file") {
				cfg.Logging.File = logFile
			}
			if noColor {
				cfg.Prompt.Color = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
				return err
			}

			s := shell.New(os.Stdin, os.Stdout, os.Stderr, shell.Options{
				Name:     cfg.Prompt.Name,
				Color:    cfg.Prompt.Color,
				Builtins: builtin.New(afero.NewOsFs(), cfg.BuiltinOptions()),
			})

			return s.Run()
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "Configuration file path (default ~/.config/myshell/config.yaml)")
	root.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	root.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	root.Flags().BoolVar(&noColor, "no-color", false, "Disable the coloured prompt")

	return root
}
