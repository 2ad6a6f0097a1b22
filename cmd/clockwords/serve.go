package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hg8496/clockwords/pkg/lang"
	"github.com/hg8496/clockwords/pkg/scanner"
	"github.com/hg8496/clockwords/pkg/serve"
	"github.com/hg8496/clockwords/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a streaming scan server for editor integration",
	Long: `Run clockwords as a long-lived streaming server that accepts scan
requests via stdin and emits matches via stdout using NDJSON format.

The scanner is built once at startup and processes requests until stdin
closes or SIGTERM is received. This is the intended integration mode for
editor frontends scanning on every keystroke.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	languages, err := serveLanguages()
	if err != nil {
		return err
	}

	config := types.Config{
		ReportPartial: viper.GetBool("partial"),
		MaxMatches:    viper.GetInt("max-matches"),
	}
	sc := scanner.New(languages, config)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigChan
		cancel()
	}()

	server := serve.NewServer(sc, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := server.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func serveLanguages() ([]lang.Language, error) {
	codes := viper.GetStringSlice("langs")
	if len(codes) == 0 {
		return lang.All()
	}
	var languages []lang.Language
	for _, code := range codes {
		l, err := lang.For(code)
		if err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	return languages, nil
}
