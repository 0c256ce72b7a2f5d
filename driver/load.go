package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	greeter "github.com/achyuta116/big-data-projects/greeter/lib"
	"github.com/google/uuid"
)

const (
	modeAvalanche = "AVALANCHE"
	modeTsunami   = "TSUNAMI"
)

type options struct {
	Target   string
	Mode     string
	Endpoint string
	Name     string
	Requests int
	Waves    int
	Delay    time.Duration
}

func (o options) validate() error {
	switch o.Mode {
	case modeAvalanche, modeTsunami:
	default:
		return fmt.Errorf("unknown mode %q", o.Mode)
	}
	switch o.Endpoint {
	case "count", "greet":
	default:
		return fmt.Errorf("unknown endpoint %q", o.Endpoint)
	}
	if o.Requests <= 0 {
		return fmt.Errorf("requests must be positive, got %d", o.Requests)
	}
	if o.Mode == modeTsunami && o.Waves <= 0 {
		return fmt.Errorf("waves must be positive, got %d", o.Waves)
	}
	return nil
}

// Test accumulates the samples of one run.
type Test struct {
	Times    []float64
	Failures int
	Lock     sync.Mutex
}

func (t *Test) record(elapsed time.Duration, ok bool) {
	t.Lock.Lock()
	defer t.Lock.Unlock()
	t.Times = append(t.Times, float64(elapsed)/float64(time.Millisecond))
	if !ok {
		t.Failures++
	}
}

type loadRunner struct {
	client *http.Client
	opts   options
}

func newLoadRunner(client *http.Client, opts options) *loadRunner {
	return &loadRunner{client: client, opts: opts}
}

func (l *loadRunner) url(path string) string {
	return strings.TrimSuffix(l.opts.Target, "/") + path
}

// fire sends one request to the configured endpoint and reports whether it
// got a 2xx answer.
func (l *loadRunner) fire(ctx context.Context) bool {
	var body []byte
	if l.opts.Endpoint == "greet" {
		body, _ = json.Marshal(l.opts.Name)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url("/greeter/"+l.opts.Endpoint), bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (l *loadRunner) wave(ctx context.Context, test *Test, n int) {
	var group sync.WaitGroup
	for i := 0; i < n; i++ {
		group.Add(1)
		go func() {
			defer group.Done()

			start := time.Now()
			ok := l.fire(ctx)
			test.record(time.Since(start), ok)
		}()
	}
	group.Wait()
}

func (l *loadRunner) avalancheTest(ctx context.Context, test *Test) {
	l.wave(ctx, test, l.opts.Requests)
}

// tsunamiTest spreads the requests over waves, the first waves taking the
// remainder, and pauses between waves.
func (l *loadRunner) tsunamiTest(ctx context.Context, test *Test) {
	per, extra := l.opts.Requests/l.opts.Waves, l.opts.Requests%l.opts.Waves
	for i := 0; i < l.opts.Waves; i++ {
		n := per
		if i < extra {
			n++
		}
		l.wave(ctx, test, n)

		if i == l.opts.Waves-1 {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(l.opts.Delay):
		}
	}
}

func (l *loadRunner) fetchState(ctx context.Context) (*greeter.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url("/greeter/state"), nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("state: unexpected status %s", resp.Status)
	}

	var snapshot greeter.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &snapshot, nil
}

// run executes one load test and summarizes it. A failure to read the final
// state is returned alongside a report that omits it.
func (l *loadRunner) run(ctx context.Context) (greeter.Report, error) {
	if err := l.opts.validate(); err != nil {
		return greeter.Report{}, err
	}

	test := &Test{Times: make([]float64, 0, l.opts.Requests)}
	switch l.opts.Mode {
	case modeAvalanche:
		l.avalancheTest(ctx, test)
	case modeTsunami:
		l.tsunamiTest(ctx, test)
	}

	report := greeter.Report{
		TestId:      uuid.NewString(),
		Type:        l.opts.Mode,
		Endpoint:    l.opts.Endpoint,
		Requests:    len(test.Times),
		Failures:    test.Failures,
		TestMetrics: greeter.CalculateMetrics(test.Times),
	}

	snapshot, err := l.fetchState(ctx)
	if err != nil {
		return report, err
	}
	report.State = snapshot
	return report, nil
}
