package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/grimdork/climate/arg"
	"github.com/xyproto/env/v2"
)

func main() {
	opt := arg.New("asmparse")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "w", "werror", "Treat warnings as errors.", env.Bool("ASMPARSE_WERROR"), false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "t", "trace", "Log section transitions.", env.Bool("ASMPARSE_TRACE"), false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "m", "macro", "Scan the input for asm!(...) invocations.", false, false, arg.VarBool, nil)
	opt.SetPositional("FILE", "Input file, or - for standard input.", "-", false, arg.VarString)

	cfg := config{
		werror: env.Bool("ASMPARSE_WERROR"),
		trace:  env.Bool("ASMPARSE_TRACE"),
	}
	if len(os.Args) > 1 {
		if err := opt.Parse(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			opt.PrintHelp()
			os.Exit(2)
		}
		if opt.GetBool("help") {
			opt.PrintHelp()
			return
		}
		cfg.werror = opt.GetBool("werror")
		cfg.trace = opt.GetBool("trace")
		cfg.macro = opt.GetBool("macro")
		if f := opt.GetPosString("FILE"); f != "" {
			cfg.file = f
		}
	}

	name, data, err := readInput(cfg.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	diag := log.New(os.Stderr, "", 0)
	os.Exit(run(cfg, name, string(data), os.Stdout, diag))
}

// readInput loads the named file, or standard input for "" and "-".
func readInput(file string) (string, []byte, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(os.Stdin)
		return "<stdin>", data, err
	}
	data, err := os.ReadFile(file)
	return file, data, err
}
