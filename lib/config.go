package greeter

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings shared by the server, client and driver.
// The listen port is not part of it; see Port.
type Config struct {
	Brokers      []string
	EventsTopic  string
	MetricsTopic string
	LogLevel     string
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("broker", "")
	v.SetDefault("events_topic", "greeter_events")
	v.SetDefault("metrics_topic", "metrics")
	v.SetDefault("log_level", "info")

	for key, env := range map[string]string{
		"broker":        "BROKER_IP",
		"events_topic":  "EVENTS_TOPIC",
		"metrics_topic": "METRICS_TOPIC",
		"log_level":     "LOG_LEVEL",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	return Config{
		Brokers:      splitBrokers(v.GetString("broker")),
		EventsTopic:  v.GetString("events_topic"),
		MetricsTopic: v.GetString("metrics_topic"),
		LogLevel:     v.GetString("log_level"),
	}, nil
}

func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
