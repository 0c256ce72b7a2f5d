package greeter

import "time"

// Port is the fixed listen port of the greeter server.
const Port = 9080

// Endpoints lists the routes served by the greeter, in the order they are
// advertised to clients that hit an unknown route.
var Endpoints = []string{
	"POST /greeter/greet",
	"POST /greeter/count",
	"GET /greeter/state",
	"GET /health",
}

const (
	EventGreeted = "greeted"
	EventCounted = "counted"
)

// Event is published after every successful state mutation.
type Event struct {
	Id      string    `json:"id"`
	Type    string    `json:"type"`
	Message string    `json:"message,omitempty"`
	Count   int64     `json:"count,omitempty"`
	At      time.Time `json:"at"`
}

type Snapshot struct {
	Count     int64    `json:"count"`
	Greetings []string `json:"greetings"`
}

type TestResult struct {
	Mean   float64 `json:"mean_latency"`
	Median float64 `json:"median_latency"`
	Min    float64 `json:"min_latency"`
	Max    float64 `json:"max_latency"`
}

// Report is what the load driver prints and publishes after a run.
type Report struct {
	TestId      string     `json:"test_id"`
	Type        string     `json:"test_type"`
	Endpoint    string     `json:"endpoint"`
	Requests    int        `json:"requests"`
	Failures    int        `json:"failures"`
	TestMetrics TestResult `json:"metrics"`
	State       *Snapshot  `json:"state,omitempty"`
}
