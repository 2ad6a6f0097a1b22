package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hg8496/clockwords/pkg/lang"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the built-in languages",
	RunE:  runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, code := range lang.Codes() {
		l, err := lang.For(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %d keywords, %d prefixes, %d rules\n",
			code, len(l.Keywords()), len(l.Prefixes()), len(l.Rules()))
	}
	return nil
}
