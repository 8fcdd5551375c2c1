// Package szl implements an embeddable command-language interpreter in
// the Tcl tradition.
//
// A program is a sequence of statements separated by newlines; each
// statement is a whitespace-separated list of tokens where the first
// token names a command and the rest are its arguments. Every value —
// strings, integers, floats, lists, dicts, procedures, and scripts — is
// represented by the single [Value] type, which lazily materialises and
// caches alternative representations of itself ("shimmering", in the
// Tcl sense).
//
// # Quick start
//
//	interp := szl.New()
//	if err := builtins.Register(interp); err != nil {
//	    log.Fatal(err)
//	}
//	result, err := interp.Eval("set a 5\nset a")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.String()) // "5"
//
// # Registering commands
//
// External packages (arithmetic, I/O, sockets, ...) register commands
// through the [Interp.RegisterCommand] contract; see package builtins
// for the minimal self-hosted standard library built on that same
// contract.
//
// # Thread safety
//
// An [*Interp] is not safe for concurrent use. Scripts execute
// cooperatively on a single goroutine; only external stream handlers
// may block (see the Stream façade in stream.go).
package szl
