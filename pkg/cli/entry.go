// Package cli is the thin embeddable entry point cmd/arischeck wraps: all
// flag parsing and command logic live here so another binary (or a test)
// can drive the checker without forking a process.
package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/your_username/arischeck/internal/config"
	"github.com/your_username/arischeck/internal/prettyprint"
	"github.com/your_username/arischeck/internal/proof"
	"github.com/your_username/arischeck/internal/rules"
	"github.com/your_username/arischeck/internal/store"
)

// Run parses args and executes the requested command, writing to stdout and
// stderr and returning the process exit code -- cmd/arischeck's main is
// just `os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))`.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("arischeck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		showVersion = fs.Bool("version", false, "print the checker version and exit")
		asciiOut    = fs.Bool("ascii", false, "print expressions using ASCII connective spellings")
		save        = fs.Bool("save", false, "persist this session's verdicts to the session database")
		dbPath      = fs.String("db", "arischeck.db", "session database path, used with -save")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: arischeck [flags] <proof-file>\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, "arischeck "+config.Version)
		return 0
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fs.Usage()
		return 2
	}
	path := rest[0]

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading %s: %v\n", path, err)
		return 1
	}

	p, err := proof.LoadText(bytes.NewReader(src))
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing %s: %v\n", path, err)
		return 1
	}

	verdicts, err := proof.CheckAll(context.Background(), p, func(l proof.LineRef) error {
		return checkOneLine(p, l)
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error checking %s: %v\n", path, err)
		return 1
	}

	failures := printVerdicts(stdout, p, verdicts, *asciiOut)

	if *save {
		if err := saveSession(*dbPath, string(src), verdicts, p); err != nil {
			fmt.Fprintf(stderr, "Error saving session: %v\n", err)
			return 1
		}
	}

	if failures > 0 {
		return 1
	}
	return 0
}

func checkOneLine(p *proof.Proof, l proof.LineRef) error {
	premise, _ := p.LookupPremise(l)
	if premise {
		return nil
	}
	concl, _ := p.LookupExpr(l)
	just, _ := p.LookupJustification(l)
	sp, _ := p.LineSubproof(l)
	ctx := &rules.Context{
		Proof:      p,
		Line:       l,
		Conclusion: concl,
		Subproof:   sp,
		Deps:       just.Deps,
		SubDeps:    just.SubDeps,
	}
	return rules.Check(just.Rule, ctx)
}

// printVerdicts writes one line per checked proof step, colorizing ✓/✗ only
// when stdout is a real terminal, and returns the number of failed lines.
func printVerdicts(stdout io.Writer, p *proof.Proof, verdicts []proof.Verdict, ascii bool) int {
	colorize := false
	if f, ok := stdout.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	failures := 0
	for i, v := range verdicts {
		e, _ := p.LookupExpr(v.Line)
		rendered := prettyprint.Print(e)
		if ascii {
			rendered = prettyprint.PrintASCII(e)
		}

		premise, _ := p.LookupPremise(v.Line)
		mark := "✓"
		if v.Err != nil {
			mark = "✗"
			failures++
		}
		if colorize {
			mark = colorMark(mark, v.Err == nil)
		}

		if premise {
			fmt.Fprintf(stdout, "%2d. %s %s  (premise)\n", i+1, mark, rendered)
			continue
		}
		just, _ := p.LookupJustification(v.Line)
		if v.Err != nil {
			fmt.Fprintf(stdout, "%2d. %s %s  [%s] -- %s\n", i+1, mark, rendered, just.Rule, v.Err)
		} else {
			fmt.Fprintf(stdout, "%2d. %s %s  [%s]\n", i+1, mark, rendered, just.Rule)
		}
	}
	return failures
}

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func colorMark(mark string, ok bool) string {
	if ok {
		return ansiGreen + mark + ansiReset
	}
	return ansiRed + mark + ansiReset
}

func saveSession(dbPath, source string, verdicts []proof.Verdict, p *proof.Proof) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	out := make([]store.LineVerdict, len(verdicts))
	for i, v := range verdicts {
		just, _ := p.LookupJustification(v.Line)
		lv := store.LineVerdict{Line: i + 1, Rule: just.Rule, OK: v.Err == nil}
		if v.Err != nil {
			lv.Message = v.Err.Error()
		}
		out[i] = lv
	}

	id, err := s.SaveSession(source, time.Now().Unix(), out)
	if err != nil {
		return err
	}
	_ = id
	return nil
}
