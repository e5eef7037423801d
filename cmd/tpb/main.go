package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tpb/internal/apperr"
	"tpb/internal/downloader"
	"tpb/internal/logger"
	"tpb/internal/scrape"
)

// app carries what the commands need from the outside world, so tests can
// point them at local servers and a fake download program.
type app struct {
	transport http.RoundTripper
	runner    downloader.Runner
	dumpDir   string
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tpb",
		Short: "Search a torrent index mirror and download the top match",
		Long: `tpb queries a torrent index mirror, prints the best matching torrents and can
hand the top match to an external download program (aria2c by default).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger.SetDebugMode(verbose)
			return checkPlatform()
		},
		RunE: a.runRoot,
	}

	searchCmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the mirror and print the top results",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runSearch,
	}

	downloadCmd := &cobra.Command{
		Use:   "download <term>",
		Short: "Download the top result with the external download program",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runDownload,
	}

	configureCmd := &cobra.Command{
		Use:   "configure --mirror=<mirror>",
		Short: "Store the mirror to use by default",
		Args:  cobra.NoArgs,
		RunE:  a.runConfigure,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored configuration",
		Args:  cobra.NoArgs,
		RunE:  a.runShow,
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the speed of the known mirrors",
		Args:  cobra.NoArgs,
		RunE:  a.runStatus,
	}

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statusCmd)

	// Global flags
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose mode")
	rootCmd.PersistentFlags().String("mirror", "", "Mirror hostname (overrides the configured one)")
	rootCmd.PersistentFlags().String("category", "", "Category id or name, see --list-categories")
	rootCmd.PersistentFlags().Int("limit", scrape.DefaultLimit, "Maximum number of results")
	rootCmd.PersistentFlags().String("status-url", "", "Mirror directory to check with status")
	rootCmd.PersistentFlags().String("downloader", "", "Download program (default $TPB_DOWNLOADER or aria2c)")
	rootCmd.PersistentFlags().MarkHidden("status-url")
	rootCmd.PersistentFlags().MarkHidden("downloader")

	rootCmd.Flags().Bool("list-categories", false, "List the search categories")

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(&app{dumpDir: "."}).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperr.ExitCode(err))
	}
}
