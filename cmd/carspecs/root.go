package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/carspecs/internal/config"
)

// NewRootCmd creates the root command. Running it performs one lookup.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carspecs",
		Short: "Look up car years, models, and specifications on carspecs.us",
		Long: `carspecs fetches pages from carspecs.us and prints what they list as a table.

Which page is fetched depends on the flags that are present:

  --make                         years and models of the make
  --make --model                 years the model was made
  --make --year                  models made in that year
  --make --model --year          price, mileage, and specifications

Lookup problems (unknown make, no matching rows, an unreachable page) are
logged on stderr; the command still exits 0. Invalid flags or configuration
exit 1.

Examples:
  # Models and years of a make
  carspecs --make honda

  # Specifications of one car, as Markdown
  carspecs --make honda --model civic --year 2001 --markdown

  # Record the lookup in the history database
  carspecs --make toyota --year 2020 --save`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLookupCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("db-dir", config.XDGDataDir(), "Directory of the lookup history database")

	// Lookup parameters
	cmd.Flags().String("make", "", "Car make, e.g. honda (required)")
	cmd.Flags().String("model", "", "Car model, e.g. civic")
	cmd.Flags().Int("year", 0, "Model year, e.g. 2001")
	_ = cmd.MarkFlagRequired("make") //nolint:errcheck // flag is defined above

	// Fetch flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout, "Timeout for each HTTP request (0 disables it)")
	cmd.Flags().String("proxy", "", "SOCKS5 proxy, host:port or socks5://[user:pass@]host:port")
	cmd.Flags().String("base-url", "", "Override the site root")
	_ = cmd.Flags().MarkHidden("base-url") //nolint:errcheck // flag is defined above

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .carspecs in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false, "Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().Bool("save", false, "Record the lookup in the history database")

	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
