//go:build wasm

package main

import (
	"encoding/json"
	"syscall/js"
	"time"

	"github.com/hg8496/clockwords"
	"github.com/hg8496/clockwords/pkg/serve"
)

var scanner = clockwords.DefaultScanner()

func main() {
	// Export functions to JavaScript
	js.Global().Set("ClockwordsScan", js.FuncOf(scan))
	js.Global().Set("ClockwordsLanguages", js.FuncOf(languages))

	// Keep WASM running
	<-make(chan struct{})
}

// scan(text, nowRFC3339?) -> JSON string of matches.
func scan(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorJSON("scan requires at least a text argument")
	}
	text := args[0].String()

	now := time.Now().UTC()
	if len(args) > 1 && args[1].Truthy() {
		parsed, err := time.Parse(time.RFC3339, args[1].String())
		if err != nil {
			return errorJSON("invalid now instant: " + err.Error())
		}
		now = parsed.UTC()
	}

	matches := scanner.Scan(text, now)
	data, err := json.Marshal(serve.NewMatches(text, matches))
	if err != nil {
		return errorJSON(err.Error())
	}
	return string(data)
}

func languages(this js.Value, args []js.Value) any {
	data, err := json.Marshal(scanner.Languages())
	if err != nil {
		return errorJSON(err.Error())
	}
	return string(data)
}

func errorJSON(msg string) string {
	data, _ := json.Marshal(map[string]string{"error": msg})
	return string(data)
}
