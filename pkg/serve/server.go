// Package serve runs the scanner as a long-lived NDJSON server: requests
// arrive on stdin, responses leave on stdout, one JSON object per line.
// The scanner is built once at startup and reused for every request, which
// is the intended integration mode for editor frontends.
package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/hg8496/clockwords/pkg/scanner"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server manages the streaming scanner
type Server struct {
	scanner *scanner.Scanner
	now     func() time.Time
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server. The clock is only consulted
// for requests that omit their own reference instant.
func NewServer(sc *scanner.Scanner, in io.Reader, out io.Writer) *Server {
	return &Server{
		scanner: sc,
		now:     time.Now,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// Run starts the server main loop
func (s *Server) Run(ctx context.Context) error {
	s.sendReady()

	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Process requests until stdin closes or context cancels
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(req) {
						return nil
					}
				default:
					if err == io.EOF {
						return nil
					}
					s.sendError("decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	switch req.Type {
	case "scan":
		s.handleScan(req.Payload)
	case "scan_batch":
		s.handleScanBatch(req.Payload)
	case "close":
		return true
	default:
		s.sendError("unknown", "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) sendReady() {
	data, _ := json.Marshal(ReadyData{
		Version:   Version,
		Languages: s.scanner.Languages(),
	})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "ready",
		Data:    data,
	})
}

func (s *Server) instant(override *time.Time) time.Time {
	if override != nil {
		return override.UTC()
	}
	return s.now().UTC()
}

func (s *Server) handleScan(payload json.RawMessage) {
	var p ScanPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("scan", err.Error())
		return
	}

	matches := s.scanner.Scan(p.Text, s.instant(p.Now))

	data, _ := json.Marshal(ScanData{Matches: NewMatches(p.Text, matches)})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "scan",
		Data:    data,
	})
}

func (s *Server) handleScanBatch(payload json.RawMessage) {
	var p ScanBatchPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("scan_batch", err.Error())
		return
	}

	results := make(map[string][]Match, len(p.Items))
	for _, item := range p.Items {
		matches := s.scanner.Scan(item.Text, s.instant(item.Now))
		results[item.ID] = NewMatches(item.Text, matches)
	}

	data, _ := json.Marshal(BatchData{Results: results})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "scan_batch",
		Data:    data,
	})
}

func (s *Server) sendError(reqType, msg string) {
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	})
}
