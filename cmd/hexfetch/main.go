package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hyzeos/hexfetch/cmd/hexfetch/common"
	"github.com/hyzeos/hexfetch/cmd/hexfetch/info"
	"github.com/hyzeos/hexfetch/pkg/config"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	ctx := &common.Context{}

	var cfgFile string

	// rootCmd renders the report when run without a subcommand, matching
	// the kernel's sysinfo command.
	rootCmd := &cobra.Command{
		Use:          "hexfetch",
		SilenceUsage: true,
		Long: "hexfetch renders the HyzeOS system information report:\n" +
			"CPU identity, memory size, and uptime, gathered straight from\n" +
			"the hardware and framed by the HyzeOS banner.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			ctx.Config = cfg

			if ctx.Verbose {
				log.Println("Verbose output enabled globally.")
				return os.Setenv("VERBOSE", "true")
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&ctx.Verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/hexfetch/config.yaml)")

	// Disable command sorting to keep commands sorted as added below
	cobra.EnableCommandSorting = false

	fetchCmd := info.FetchCommand(ctx)
	rootCmd.RunE = fetchCmd.RunE

	rootCmd.AddCommand(
		fetchCmd,
		info.ExportCommand(ctx),
		info.PaletteCommand(ctx),
		versionCommand(),
	)

	// disable logging timestamps
	log.SetFlags(0)

	// Hide the 'completion' command from help text
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("hexfetch " + version)
		},
	}
}
