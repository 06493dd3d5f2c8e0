package main

import (
	"fmt"
	"io"
	"log"

	"github.com/Urethramancer/inlineasm/codemap"
	"github.com/Urethramancer/inlineasm/inlineasm"
)

type config struct {
	file   string
	werror bool
	trace  bool
	macro  bool
}

// run parses src and prints each directive to out, one per line. Diagnostics
// go to diag. The return value is the process exit code.
func run(cfg config, name, src string, out io.Writer, diag *log.Logger) int {
	opts := []inlineasm.ParserOption{inlineasm.WithSink(inlineasm.LogSink{Logger: diag})}
	if cfg.trace {
		opts = append(opts, inlineasm.WithLogger(log.New(diag.Writer(), "trace: ", 0)))
	}
	tab := codemap.NewTable()
	p := inlineasm.New(tab, opts...)

	var (
		results []*inlineasm.Result
		err     error
	)
	if cfg.macro {
		results, err = p.ParseInvocations(name, src)
	} else {
		var res *inlineasm.Result
		res, err = p.ParseString(name, src)
		if res != nil {
			results = append(results, res)
		}
	}

	failed := err != nil
	for _, res := range results {
		if res == nil {
			continue
		}
		if res.Diagnostics.HasErrors() || (cfg.werror && len(res.Diagnostics) > 0) {
			failed = true
		}
		switch {
		case res.Placeholder:
			fmt.Fprintln(out, "asm!(<error>)")
		case res.Directive != nil:
			d := res.Directive
			site := "-"
			if info, ok := tab.Info(d.Provenance); ok {
				site = info.CallSite.String()
			}
			fmt.Fprintf(out, "asm!(%s) ; %s %s dialect=%s\n", d, site, d.Provenance, d.Flags.Dialect)
		}
	}
	if err != nil {
		diag.Printf("error: %v", err)
	}

	if failed {
		return 1
	}
	return 0
}
