package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	greeter "github.com/achyuta116/big-data-projects/greeter/lib"
	"github.com/spf13/cobra"
)

var opts options

var rootCmd = &cobra.Command{
	Use:   "driver",
	Short: "Load a running greeter and report latencies",
	Long: `Fire requests at a greeter server and print latency metrics.

An avalanche sends every request at once. A tsunami splits them into waves
separated by --delay. The report is also published to METRICS_TOPIC when
BROKER_IP is set.

Examples:
  driver --requests 500
  driver --mode tsunami --waves 5 --delay 1s --endpoint greet --name Alice`,
	SilenceUsage: true,
	RunE:         runDriver,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.Target, "target", fmt.Sprintf("http://localhost:%d", greeter.Port), "greeter base URL")
	f.StringVar(&opts.Mode, "mode", "avalanche", "avalanche or tsunami")
	f.StringVar(&opts.Endpoint, "endpoint", "count", "count or greet")
	f.StringVar(&opts.Name, "name", "World", "name sent to the greet endpoint")
	f.IntVar(&opts.Requests, "requests", 500, "total number of requests")
	f.IntVar(&opts.Waves, "waves", 5, "number of tsunami waves")
	f.DurationVar(&opts.Delay, "delay", time.Second, "pause between tsunami waves")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDriver(cmd *cobra.Command, args []string) error {
	cfg, err := greeter.LoadConfig()
	if err != nil {
		return err
	}
	logger := greeter.NewLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts.Mode = strings.ToUpper(opts.Mode)
	runner := newLoadRunner(&http.Client{Timeout: 30 * time.Second}, opts)

	logger.Info("starting load test", "target", opts.Target, "mode", opts.Mode, "endpoint", opts.Endpoint, "requests", opts.Requests)
	report, err := runner.run(ctx)
	if err != nil && report.TestId == "" {
		return err
	}
	if err != nil {
		logger.Warn("could not read final state", "err", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	metrics := greeter.NewPublisher(cfg.Brokers, cfg.MetricsTopic, logger)
	if err := metrics.Publish(ctx, report.TestId, report); err != nil {
		logger.Warn("publish report failed", "err", err)
	}
	return metrics.Close()
}
