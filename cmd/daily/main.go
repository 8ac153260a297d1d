package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Skyhigh44/Productivity/internal/calendar"
	"github.com/Skyhigh44/Productivity/internal/cli"
)

func isMonthArg(s string) bool {
	_, ok := calendar.ParseMonth(strings.TrimSpace(s), time.UTC)
	return ok
}

// rewriteMonthShortcutArgs turns `daily 2026-10` into `daily calendar 2026-10`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first, so we look for the first
// positional token rather than argv[1].
func rewriteMonthShortcutArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	// Flags we don't know are skipped without skipping a value, so a month
	// is never swallowed by mistake.
	valueFlags := map[string]bool{
		"--config":   true,
		"--env-file": true,
		"--format":   true,
		"--theme":    true,
		"--glyphs":   true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isMonthArg(argv[i+1]) {
				return insertAt(argv, i+1, "calendar")
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		// First positional token.
		if isMonthArg(a) {
			return insertAt(argv, i, "calendar")
		}
		return argv
	}
	return argv
}

func insertAt(argv []string, i int, words ...string) []string {
	out := make([]string, 0, len(argv)+len(words))
	out = append(out, argv[:i]...)
	out = append(out, words...)
	out = append(out, argv[i:]...)
	return out
}

func main() {
	os.Args = rewriteMonthShortcutArgs(os.Args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		cli.Report(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
