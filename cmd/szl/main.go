// Command szl is the shell front-end for the szl interpreter: file
// execution, inline -c scripts, and an interactive REPL. It consumes
// the core's public contracts and nothing more; the core itself has
// no CLI of its own.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/szl-lang/szl"
	"github.com/szl-lang/szl/builtins"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("szl", pflag.ContinueOnError)
	inline := flags.StringP("command", "c", "", "execute TEXT instead of a script file")
	recursionLimit := flags.Int("recursion-limit", szl.DefaultRecursionLimit, "maximum call nesting depth")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ip := szl.New()
	ip.SetRecursionLimit(*recursionLimit)
	if err := builtins.Register(ip); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	switch {
	case *inline != "":
		return execAndReport(ip, *inline)
	case flags.NArg() == 1:
		data, err := os.ReadFile(flags.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		return execAndReport(ip, string(data))
	default:
		return repl(ip)
	}
}

func execAndReport(ip *szl.Interp, text string) int {
	result, status, err := ip.EvalStatus(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if status == szl.StatusError {
		fmt.Fprintln(os.Stderr, result.String())
	}
	return exitCodeFor(status, result)
}

func repl(ip *szl.Interp) int {
	editor := NewLineEditor()
	for {
		line, err := editor.ReadLine("szl> ")
		if errors.Is(err, ErrEOF) || errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stdout)
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if line == "" {
			continue
		}
		result, status, err := ip.EvalStatus(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if status == szl.StatusError {
			fmt.Fprintln(os.Stderr, result.String())
			continue
		}
		fmt.Fprintln(os.Stdout, result.String())
	}
}

// exitCodeFor maps a terminal Status and result to a process exit
// code: 1 on Error; for any other status, the result's value when it
// parses as a non-zero integer, and 0 otherwise.
func exitCodeFor(status szl.Status, result *szl.Value) int {
	if status == szl.StatusError {
		return 1
	}
	n, err := strconv.ParseInt(result.String(), 10, 64)
	if err == nil && n != 0 {
		return int(n)
	}
	return 0
}
