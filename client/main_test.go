package main

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
	"time"

	greeter "github.com/achyuta116/big-data-projects/greeter/lib"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintEvent(t *testing.T) {
	var out, logs bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	logger := greeter.NewLogger(&logs, "info")

	at := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	for _, e := range []greeter.Event{
		{Id: "1", Type: greeter.EventGreeted, Message: "Hello, World!", At: at},
		{Id: "2", Type: greeter.EventCounted, Count: 7, At: at},
	} {
		b, err := json.Marshal(e)
		require.NoError(t, err)
		printEvent(cmd, logger, b)
	}

	assert.Equal(t, "03:04:05.006 greeted \"Hello, World!\"\n03:04:05.006 counted 7\n", out.String())
	assert.Empty(t, logs.String())
}

func TestPrintEventUndecodable(t *testing.T) {
	var logs bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(io.Discard)

	printEvent(cmd, greeter.NewLogger(&logs, "info"), []byte("not json"))
	printEvent(cmd, greeter.NewLogger(&logs, "info"), []byte(`{"id":"x"}`))

	assert.Equal(t, 2, bytes.Count(logs.Bytes(), []byte("undecodable event")))
}
