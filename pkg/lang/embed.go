package lang

import "embed"

// lexiconFS embeds the per-language keyword and typing-prefix lists.
// One YAML file per built-in language code.
//
//go:embed data/*.yaml
var lexiconFS embed.FS
