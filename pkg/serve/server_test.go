package serve

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hg8496/clockwords/pkg/lang"
	"github.com/hg8496/clockwords/pkg/scanner"
	"github.com/hg8496/clockwords/pkg/types"
)

func newTestServer(t *testing.T, input string) (*Server, *bytes.Buffer) {
	t.Helper()
	languages, err := lang.All()
	require.NoError(t, err)
	sc := scanner.New(languages, types.DefaultConfig())

	var out bytes.Buffer
	return NewServer(sc, strings.NewReader(input), &out), &out
}

func responses(t *testing.T, out *bytes.Buffer) []Response {
	t.Helper()
	var all []Response
	lines := bufio.NewScanner(out)
	for lines.Scan() {
		var r Response
		require.NoError(t, json.Unmarshal(lines.Bytes(), &r))
		all = append(all, r)
	}
	return all
}

func TestServer_ReadyThenEOF(t *testing.T) {
	srv, out := newTestServer(t, "")

	err := srv.Run(context.Background())
	require.NoError(t, err)

	all := responses(t, out)
	require.Len(t, all, 1)
	assert.Equal(t, "ready", all[0].Type)
	assert.True(t, all[0].Success)

	var ready ReadyData
	require.NoError(t, json.Unmarshal(all[0].Data, &ready))
	assert.Equal(t, Version, ready.Version)
	assert.Equal(t, []string{"de", "en", "es", "fr"}, ready.Languages)
}

func TestServer_ScanRequest(t *testing.T) {
	input := `{"type":"scan","payload":{"text":"we met yesterday","now":"2026-02-07T14:30:00Z"}}` + "\n"
	srv, out := newTestServer(t, input)

	require.NoError(t, srv.Run(context.Background()))

	all := responses(t, out)
	require.Len(t, all, 2)
	scanResp := all[1]
	assert.True(t, scanResp.Success)
	assert.Equal(t, "scan", scanResp.Type)

	var data ScanData
	require.NoError(t, json.Unmarshal(scanResp.Data, &data))
	require.Len(t, data.Matches, 1)

	m := data.Matches[0]
	assert.Equal(t, "yesterday", m.Text)
	assert.Equal(t, "relative-day", m.Kind)
	assert.Equal(t, "complete", m.Confidence)
	assert.Equal(t, "range", m.Resolved)
	require.NotNil(t, m.From)
	assert.Equal(t, time.Date(2026, time.February, 6, 0, 0, 0, 0, time.UTC), m.From.UTC())
}

func TestServer_ScanBatchRequest(t *testing.T) {
	input := `{"type":"scan_batch","payload":{"items":[` +
		`{"id":"a","text":"nothing here","now":"2026-02-07T14:30:00Z"},` +
		`{"id":"b","text":"hace 2 días","now":"2026-02-07T14:30:00Z"}]}}` + "\n"
	srv, out := newTestServer(t, input)

	require.NoError(t, srv.Run(context.Background()))

	all := responses(t, out)
	require.Len(t, all, 2)

	var data BatchData
	require.NoError(t, json.Unmarshal(all[1].Data, &data))
	assert.Empty(t, data.Results["a"])
	require.Len(t, data.Results["b"], 1)
	assert.Equal(t, "hace 2 días", data.Results["b"][0].Text)
}

func TestServer_CloseRequestStopsLoop(t *testing.T) {
	input := `{"type":"close"}` + "\n" +
		`{"type":"scan","payload":{"text":"yesterday"}}` + "\n"
	srv, out := newTestServer(t, input)

	require.NoError(t, srv.Run(context.Background()))

	// Only the ready response; the request after close is never processed.
	all := responses(t, out)
	assert.Len(t, all, 1)
}

func TestServer_UnknownRequestType(t *testing.T) {
	input := `{"type":"frobnicate"}` + "\n"
	srv, out := newTestServer(t, input)

	require.NoError(t, srv.Run(context.Background()))

	all := responses(t, out)
	require.Len(t, all, 2)
	assert.False(t, all[1].Success)
	assert.Contains(t, all[1].Error, "unknown request type")
}

func TestServer_MalformedPayload(t *testing.T) {
	input := `{"type":"scan","payload":{"text":42}}` + "\n"
	srv, out := newTestServer(t, input)

	require.NoError(t, srv.Run(context.Background()))

	all := responses(t, out)
	require.Len(t, all, 2)
	assert.False(t, all[1].Success)
}

func TestServer_PointMatchWireForm(t *testing.T) {
	input := `{"type":"scan","payload":{"text":"at 3pm","now":"2026-02-07T14:30:00Z"}}` + "\n"
	srv, out := newTestServer(t, input)

	require.NoError(t, srv.Run(context.Background()))

	all := responses(t, out)
	require.Len(t, all, 2)

	var data ScanData
	require.NoError(t, json.Unmarshal(all[1].Data, &data))
	require.Len(t, data.Matches, 1)

	m := data.Matches[0]
	assert.Equal(t, "point", m.Resolved)
	require.NotNil(t, m.At)
	assert.Equal(t, time.Date(2026, time.February, 7, 15, 0, 0, 0, time.UTC), m.At.UTC())
	assert.Nil(t, m.From)
}
