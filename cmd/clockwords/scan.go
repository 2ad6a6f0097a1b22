package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hg8496/clockwords"
	"github.com/hg8496/clockwords/pkg/serve"
)

var (
	scanJSON  bool
	scanNow   string
	scanColor string
)

var scanCmd = &cobra.Command{
	Use:   "scan [text]",
	Short: "Scan text for time expressions",
	Long: `Scan the given text (or stdin when no argument is given) for relative
time expressions and print each match with its resolved time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Emit matches as JSON")
	scanCmd.Flags().StringVar(&scanNow, "now", "", "Reference instant, RFC 3339 (default: current time)")
	scanCmd.Flags().StringVar(&scanColor, "color", "auto", "Color output: auto, always, never")
}

// styles holds color formatters for human-readable output
type styles struct {
	match    *color.Color
	partial  *color.Color
	kind     *color.Color
	resolved *color.Color
}

// newStyles creates color formatters for scan output
// enabled=false respects --color=never and the NO_COLOR convention
func newStyles(enabled bool) *styles {
	s := &styles{
		match:    color.New(color.Bold, color.FgYellow),
		partial:  color.New(color.Faint, color.FgYellow),
		kind:     color.New(color.FgHiBlue),
		resolved: color.New(color.FgHiGreen),
	}
	if !enabled {
		for _, c := range []*color.Color{s.match, s.partial, s.kind, s.resolved} {
			c.DisableColor()
		}
	}
	return s
}

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	text, err := scanInput(args)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if scanNow != "" {
		now, err = time.Parse(time.RFC3339, scanNow)
		if err != nil {
			return fmt.Errorf("parsing --now: %w", err)
		}
		now = now.UTC()
	}

	scanner, err := newConfiguredScanner()
	if err != nil {
		return err
	}
	matches := scanner.Scan(text, now)

	out := cmd.OutOrStdout()
	if scanJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(serve.NewMatches(text, matches))
	}

	printHuman(out, text, matches, newStyles(colorEnabled(scanColor)))
	return nil
}

func scanInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// newConfiguredScanner builds the scanner from the persistent flags and
// their CLOCKWORDS_* environment equivalents.
func newConfiguredScanner() (*clockwords.Scanner, error) {
	opts := []clockwords.Option{
		clockwords.WithPartialMatches(viper.GetBool("partial")),
		clockwords.WithMaxMatches(viper.GetInt("max-matches")),
	}
	if langs := viper.GetStringSlice("langs"); len(langs) > 0 {
		opts = append(opts, clockwords.WithLanguages(langs...))
	}
	return clockwords.NewScanner(opts...)
}

func printHuman(out io.Writer, text string, matches []clockwords.TimeMatch, st *styles) {
	if len(matches) == 0 {
		fmt.Fprintln(out, "no time expressions found")
		return
	}

	fmt.Fprintln(out, highlight(text, matches, st))
	fmt.Fprintln(out)

	for _, m := range matches {
		fmt.Fprintf(out, "%3d-%-3d %-20q %-22s %-8s %s\n",
			m.Span.Start, m.Span.End,
			text[m.Span.Start:m.Span.End],
			st.kind.Sprint(m.Kind),
			m.Confidence,
			st.resolved.Sprint(formatResolved(m.Resolved)))
	}
}

// highlight rewrites the scanned text with each matched span colored.
// Spans never overlap and arrive sorted, so a single pass suffices.
func highlight(text string, matches []clockwords.TimeMatch, st *styles) string {
	var b strings.Builder
	prev := 0
	for _, m := range matches {
		b.WriteString(text[prev:m.Span.Start])
		c := st.match
		if m.Confidence == clockwords.Partial {
			c = st.partial
		}
		b.WriteString(c.Sprint(text[m.Span.Start:m.Span.End]))
		prev = m.Span.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

func formatResolved(r clockwords.ResolvedTime) string {
	if r.IsRange() {
		return fmt.Sprintf("%s .. %s",
			r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339))
	}
	return r.Start.Format(time.RFC3339)
}
