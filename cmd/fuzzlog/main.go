package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
	"github.com/Adirelle/fuzzlog/pkg/report"
	"github.com/Adirelle/fuzzlog/pkg/script"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	tableReport bool
)

var rootCmd = &cobra.Command{
	Use:   "fuzzlog",
	Short: "fuzzlog - test event logging for fuzzing harnesses",
	Long: `fuzzlog replays recorded test event scripts through the configured sinks
(console, rotating files, structured log, Discord) and prints a pass/fail summary.`,
	SilenceUsage: true,
}

var replayCmd = &cobra.Command{
	Use:   "replay <script>...",
	Short: "Replay event scripts and print the summary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := LoadConfig(FindConfigFile(ConfigSearchPath(configPath)))
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return Run(ctx, conf, args, cmd.OutOrStdout(), tableReport)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := LoadConfig(FindConfigFile(ConfigSearchPath(configPath)))
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(conf)
	},
}

func init() {
	log.SetHandler(cli.New(os.Stderr))
	log.SetLevel(log.WarnLevel)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file or directory (default: "+ConfigFilename+" in the working directory)")
	replayCmd.Flags().BoolVar(&tableReport, "table", false, "print the summary as a markdown table")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Run replays the scripts, in order, through the configured sinks, then
// writes the summary to out. Failed checks do not make Run fail; sink and
// script errors do.
func Run(ctx context.Context, conf *Config, scripts []string, out io.Writer, table bool) (err error) {
	supervisorCtx, stopSupervisor := context.WithCancel(ctx)
	supervisor := MakeRootSupervisor()
	if svc := conf.Logging.Install(); svc != nil {
		supervisor.Add(svc)
	}
	supervisorDone := supervisor.ServeBackground(supervisorCtx)
	defer func() {
		stopSupervisor()
		if serr := <-supervisorDone; serr != nil && !errors.Is(serr, context.Canceled) {
			log.WithError(serr).Error("supervisor")
		}
	}()

	sinks, cleanup, err := conf.BuildSinks(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cleanup.Close(); err == nil {
			err = cerr
		}
	}()

	mux := fuzzlog.NewMultiplexer(sinks...)
	for _, path := range scripts {
		if err = replayFile(ctx, path, mux); err != nil {
			break
		}
	}

	if table {
		if rerr := report.Table(out, mux); err == nil {
			err = rerr
		}
	} else {
		summary := fuzzlog.Summary(mux)
		if !strings.HasSuffix(summary, "\n") {
			summary += "\n"
		}
		if _, werr := io.WriteString(out, summary); err == nil {
			err = werr
		}
	}
	return
}

func replayFile(ctx context.Context, path string, sink fuzzlog.Sink) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	logger := log.WithField("script", path)
	count, err := script.Replay(ctx, file, sink)
	if err != nil {
		logger.WithError(err).WithField("records", count).Error("replay.aborted")
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.WithField("records", count).Info("replay.done")
	return nil
}
