package serve

import (
	"encoding/json"
	"time"

	"github.com/hg8496/clockwords/pkg/types"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "scan" | "scan_batch" | "close"
	Payload json.RawMessage `json:"payload"`
}

// ScanPayload is the payload for "scan" requests. Now is optional; the
// server substitutes its own clock when it is absent.
type ScanPayload struct {
	Text string     `json:"text"`
	Now  *time.Time `json:"now,omitempty"`
}

// ScanItem is one buffer in a "scan_batch" request.
type ScanItem struct {
	ID   string     `json:"id"`
	Text string     `json:"text"`
	Now  *time.Time `json:"now,omitempty"`
}

// ScanBatchPayload is the payload for "scan_batch" requests
type ScanBatchPayload struct {
	Items []ScanItem `json:"items"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // "ready" | "scan" | "scan_batch" | "error"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version   string   `json:"version"`
	Languages []string `json:"languages"`
}

// ScanData is the data field for "scan" responses.
type ScanData struct {
	Matches []Match `json:"matches"`
}

// BatchData is the data field for "scan_batch" responses, keyed per item.
type BatchData struct {
	Results map[string][]Match `json:"results"`
}

// Match is the wire form of one resolved time expression.
type Match struct {
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Text       string     `json:"text"`
	Kind       string     `json:"kind"`
	Confidence string     `json:"confidence"`
	Resolved   string     `json:"resolved"` // "point" | "range"
	At         *time.Time `json:"at,omitempty"`
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
}

// NewMatch converts one scan result to its wire form, slicing the matched
// text out of the scanned buffer.
func NewMatch(text string, m types.TimeMatch) Match {
	out := Match{
		Start:      m.Span.Start,
		End:        m.Span.End,
		Text:       text[m.Span.Start:m.Span.End],
		Kind:       m.Kind.String(),
		Confidence: m.Confidence.String(),
	}
	if m.Resolved.IsRange() {
		out.Resolved = "range"
		from, to := m.Resolved.Start, m.Resolved.End
		out.From, out.To = &from, &to
	} else {
		out.Resolved = "point"
		at := m.Resolved.Start
		out.At = &at
	}
	return out
}

// NewMatches converts a full scan result.
func NewMatches(text string, matches []types.TimeMatch) []Match {
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = NewMatch(text, m)
	}
	return out
}
