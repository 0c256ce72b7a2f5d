package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	greeter "github.com/achyuta116/big-data-projects/greeter/lib"
	"github.com/gorilla/mux"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

type dispatcher struct {
	state  *greeter.State
	events greeter.Publisher
	logger *slog.Logger
	now    func() time.Time
}

func newDispatcher(state *greeter.State, events greeter.Publisher, logger *slog.Logger) *dispatcher {
	return &dispatcher{
		state:  state,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

func (d *dispatcher) routes() http.Handler {
	// Paths are matched exactly as sent: no cleaning redirects, no decoding.
	r := mux.NewRouter().SkipClean(true).UseEncodedPath()
	r.HandleFunc("/greeter/greet", d.Greet).Methods(http.MethodPost)
	r.HandleFunc("/greeter/count", d.Count).Methods(http.MethodPost)
	r.HandleFunc("/greeter/state", d.State).Methods(http.MethodGet)
	r.HandleFunc("/health", d.Health).Methods(http.MethodGet)

	// A known path with the wrong method is reported like any unknown route.
	r.NotFoundHandler = http.HandlerFunc(d.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(d.NotFound)

	return d.logRequests(cors(r))
}

func (d *dispatcher) Greet(w http.ResponseWriter, r *http.Request) {
	name, err := greeter.DecodeName(r.Body)
	if err != nil {
		d.logger.Debug("rejected greet body", "err", err)
		resp := errorResponse{Error: "Invalid JSON"}
		var decodeErr *greeter.DecodeError
		if errors.As(err, &decodeErr) && decodeErr.Kind != "" {
			resp.Detail = decodeErr.Error()
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	message := d.state.Greet(name)
	d.publish(r, greeter.NewGreetedEvent(message))
	writeJSON(w, http.StatusOK, message)
}

func (d *dispatcher) Count(w http.ResponseWriter, r *http.Request) {
	count := d.state.Count()
	d.publish(r, greeter.NewCountedEvent(count))
	writeJSON(w, http.StatusOK, count)
}

func (d *dispatcher) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.state.Snapshot())
}

func (d *dispatcher) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: d.now().UTC().Format(timestampLayout),
	})
}

func (d *dispatcher) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, notFoundResponse{
		Error:              "Not found",
		AvailableEndpoints: greeter.Endpoints,
	})
}

func (d *dispatcher) publish(r *http.Request, event greeter.Event) {
	if err := d.events.Publish(r.Context(), event.Type, event); err != nil {
		d.logger.Warn("publish event failed", "type", event.Type, "id", event.Id, "err", err)
	}
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

type notFoundResponse struct {
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
