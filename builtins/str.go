package builtins

import (
	"fmt"
	"os"
	"strings"

	"github.com/szl-lang/szl"
)

// registerStr installs format (szl_str.c) and puts (szl.c).
func registerStr(ip *szl.Interp) error {
	if err := ip.RegisterCommand("format", 2, -1, "template ?arg ...?", formatCmd); err != nil {
		return err
	}
	return ip.RegisterCommand("puts", 1, 2, "?text?", putsCmd)
}

// formatCmd substitutes successive "{}" placeholders in its template
// with the string form of each following argument, in order.
func formatCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	tmpl := argv[1].String()
	args := argv[2:]
	var b strings.Builder
	argi := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '{' && i+1 < len(tmpl) && tmpl[i+1] == '}' {
			if argi >= len(args) {
				return ip.Fail(szl.Errorf(szl.Usage, "format: not enough arguments for template"))
			}
			b.WriteString(args[argi].String())
			argi++
			i++
			continue
		}
		b.WriteByte(tmpl[i])
	}
	ip.SetLast(szl.NewString(b.String()))
	return szl.StatusOk
}

func putsCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	text := ""
	if len(argv) == 2 {
		text = argv[1].String()
	}
	fmt.Fprintln(os.Stdout, text)
	ip.SetLast(ip.Empty())
	return szl.StatusOk
}
