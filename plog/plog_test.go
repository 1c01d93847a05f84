package plog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudcmds/parsekit/plog"
)

func TestEventMessageByOutcome(t *testing.T) {
	cases := []struct {
		outcome string
		want    string
	}{
		{"enter", "Entering production 'sum'"},
		{"match", "Matched production 'sum'"},
		{"fail", "Unparsed production 'sum'"},
		{"cache-hit", "Cache hit for production 'sum'"},
		{"bogus", "sum"},
	}
	for _, c := range cases {
		e := plog.Event{Symbol: "sum", Outcome: c.outcome}
		assert.Equal(t, c.want, e.Message())
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "off", plog.Off.String())
	assert.Equal(t, "default", plog.Default.String())
	assert.Equal(t, "result-only", plog.ResultOnly.String())
	assert.Equal(t, "verbose", plog.Verbose.String())
}

func TestNopSinkDiscardsEvents(t *testing.T) {
	// NopSink.Log must be callable and side-effect-free; this mainly
	// documents that it satisfies Sink without panicking.
	var sink plog.Sink = plog.NopSink{}
	sink.Log(plog.Event{Symbol: "x", Outcome: "enter"})
}

type recordingSink struct {
	events []plog.Event
}

func (r *recordingSink) Log(e plog.Event) {
	r.events = append(r.events, e)
}

func TestSinkReceivesEventsInOrder(t *testing.T) {
	sink := &recordingSink{}
	sink.Log(plog.Event{Symbol: "a", Outcome: "enter"})
	sink.Log(plog.Event{Symbol: "a", Outcome: "match"})
	assert.Len(t, sink.events, 2)
	assert.Equal(t, "enter", sink.events[0].Outcome)
	assert.Equal(t, "match", sink.events[1].Outcome)
}
