package main

import (
	"os"
	"strings"

	"focusday-cli/internal/cli"
)

func rewriteQuickCaptureArgs(argv []string) []string {
	// Convenience: `focusday + buy milk` works like `focusday inbox add buy milk`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv
	// before parsing.
	//
	// Users often pass persistent flags first (e.g. `focusday --dir ... + text`),
	// so we must find the first positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	// Minimal persistent-flag awareness. Unknown flags are skipped without
	// consuming their value, to avoid accidentally eating the "+" marker.
	valueFlags := map[string]bool{
		"--dir":       true,
		"--workspace": true,
		"--format":    true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && argv[i+1] == "+" {
				out := make([]string, 0, len(argv)+1)
				out = append(out, argv[:i+1]...)
				out = append(out, "inbox", "add")
				out = append(out, argv[i+2:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if a == "+" {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "inbox", "add")
			out = append(out, argv[i+1:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteQuickCaptureArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
