package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	greeter "github.com/achyuta116/big-data-projects/greeter/lib"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
)

var (
	topic   string
	groupId string
)

var rootCmd = &cobra.Command{
	Use:   "client",
	Short: "Print greeter events as they are published",
	Long: `Tail the greeter event topic and print every greeted/counted event.

The broker is taken from BROKER_IP.

Examples:
  BROKER_IP=localhost:9092 client
  BROKER_IP=localhost:9092 client --topic greeter_events --group tail-1`,
	SilenceUsage: true,
	RunE:         runTail,
}

func init() {
	rootCmd.Flags().StringVar(&topic, "topic", "", "topic to read (default EVENTS_TOPIC or greeter_events)")
	rootCmd.Flags().StringVar(&groupId, "group", "", "consumer group; empty reads the partition directly")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTail(cmd *cobra.Command, args []string) error {
	cfg, err := greeter.LoadConfig()
	if err != nil {
		return err
	}
	logger := greeter.NewLogger(os.Stderr, cfg.LogLevel)

	if len(cfg.Brokers) == 0 {
		return errors.New("BROKER_IP is not set")
	}
	if topic == "" {
		topic = cfg.EventsTopic
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   topic,
		GroupID: groupId,
	})
	defer reader.Close()

	logger.Info("tailing events", "brokers", cfg.Brokers, "topic", topic)
	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Info("exited gracefully")
				return nil
			}
			return fmt.Errorf("read %s: %w", topic, err)
		}
		printEvent(cmd, logger, m.Value)
	}
}

func printEvent(cmd *cobra.Command, logger *slog.Logger, value []byte) {
	var event greeter.Event
	if err := json.Unmarshal(value, &event); err != nil || event.Type == "" {
		logger.Warn("undecodable event", "value", string(value))
		return
	}

	switch event.Type {
	case greeter.EventGreeted:
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %q\n", event.At.Format("15:04:05.000"), event.Type, event.Message)
	case greeter.EventCounted:
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d\n", event.At.Format("15:04:05.000"), event.Type, event.Count)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", event.At.Format("15:04:05.000"), event.Type)
	}
}
