package szl

import "fmt"

// lookupName resolves name starting at the given frame: check the
// frame's own locals; if absent and the frame's caller is neither nil
// nor the global frame, also check the global frame's locals (a frame
// one level above global already carries a copy of global's bindings
// from push time, so re-checking it there would be redundant).
func (ip *Interp) lookupName(f *Frame, name string) (*Value, bool) {
	if v, ok := f.getLocal(name); ok {
		return v, true
	}
	if f.caller != nil && f.caller != ip.global {
		if v, ok := ip.global.getLocal(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Var resolves a variable by name in the current frame.
func (ip *Interp) Var(name string) (*Value, error) {
	v, ok := ip.lookupName(ip.current, name)
	if !ok {
		return nil, Errorf(BadName, "no such variable: %s", name)
	}
	return v, nil
}

// SetInCurrent binds name to v in the current frame's locals.
func (ip *Interp) SetInCurrent(name string, v *Value) error {
	return ip.current.setLocal(name, v)
}

// SetInGlobal binds name to v in the global frame's locals.
func (ip *Interp) SetInGlobal(name string, v *Value) error {
	return ip.global.setLocal(name, v)
}

// UnsetInCurrent removes name from the current frame's locals, if present.
func (ip *Interp) UnsetInCurrent(name string) error {
	return ip.current.locals.DictUnset(NewString(name))
}

// UnsetInCaller removes name from the current frame's caller (or the
// global frame if there is none), mirroring SetInCaller.
func (ip *Interp) UnsetInCaller(name string) error {
	if ip.current.caller != nil {
		return ip.current.caller.locals.DictUnset(NewString(name))
	}
	return ip.global.locals.DictUnset(NewString(name))
}

// CurrentDepth reports the interpreter's current nesting depth, for
// commands (e.g. an `info` built-in) that want to surface it.
func (ip *Interp) CurrentDepth() int { return ip.depth }

// SetInCaller binds name to v in the current frame's caller, or the
// global frame if the current frame has no caller.
func (ip *Interp) SetInCaller(name string, v *Value) error {
	if ip.current.caller != nil {
		return ip.current.caller.setLocal(name, v)
	}
	return ip.global.setLocal(name, v)
}

// evalToken evaluates a single raw token: empty text yields the empty
// value; a {...} token yields its inner text verbatim; a [...] token
// is executed as a nested statement; a $name token looks up a
// variable; anything else is a literal string.
func (ip *Interp) evalToken(tok string) (*Value, Status) {
	t := trimSpace(tok)
	switch {
	case t == "":
		return ip.Empty(), StatusOk
	case len(t) >= 2 && t[0] == '{' && t[len(t)-1] == '}':
		return NewString(t[1 : len(t)-1]), StatusOk
	case len(t) >= 2 && t[0] == '[' && t[len(t)-1] == ']':
		return ip.execStatementText(t[1 : len(t)-1])
	case len(t) >= 1 && t[0] == '$':
		v, err := ip.Var(t[1:])
		if err != nil {
			return nil, ip.Fail(err)
		}
		return v.Ref(), StatusOk
	default:
		return NewString(t), StatusOk
	}
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && isSpace(s[i]) {
		i++
	}
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

// execStatementText executes the raw text of one statement, returning
// the statement's result Value and Status.
func (ip *Interp) execStatementText(text string) (*Value, Status) {
	if ip.depth >= ip.recursionLimit {
		ip.Logger.Printf("recursion limit %d exceeded", ip.recursionLimit)
		return nil, ip.Fail(Errorf(NestingLimit, "recursion limit exceeded"))
	}
	tokens, err := Tokenize(trimSpace(text))
	if err != nil {
		return nil, ip.Fail(err)
	}
	if len(tokens) == 0 {
		ip.SetLast(ip.Empty())
		return ip.last, StatusOk
	}

	f, err := newFrame(ip.current)
	if err != nil {
		return nil, ip.Fail(err)
	}
	outer := ip.current
	ip.current = f
	ip.depth++
	defer func() {
		f.release()
		ip.current = outer
		ip.depth--
	}()

	argv := make([]*Value, 0, len(tokens))
	for _, t := range tokens {
		v, status := ip.evalToken(t)
		if status != StatusOk {
			for _, a := range argv {
				a.Unref()
			}
			return ip.last, status
		}
		argv = append(argv, v)
	}
	if err := f.bindArgs(argv); err != nil {
		for _, a := range argv {
			a.Unref()
		}
		return nil, ip.Fail(err)
	}

	headName := argv[0].String()
	cmd, ok := ip.lookupName(f, headName)
	if !ok || !cmd.IsCallable() {
		return nil, ip.SetError(fmt.Sprintf("not a proc: %s", headName))
	}
	argc := len(argv)
	if cmd.cmd.minArgc >= 0 && argc < cmd.cmd.minArgc ||
		cmd.cmd.maxArgc >= 0 && argc > cmd.cmd.maxArgc {
		return nil, ip.SetError(fmt.Sprintf("bad usage, should be '%s %s'", headName, cmd.cmd.help))
	}

	status := cmd.cmd.handler(ip, argv)
	_ = outer.setLocal("_", ip.last.Ref())
	return ip.last, status
}

// execScript executes stmts in order, stopping at the first non-Ok
// status. It does not itself translate Return to Ok; that conversion
// happens at the call boundary that owns the script (e.g. a
// user-defined procedure's invocation handler).
func (ip *Interp) execScript(stmts []string) (*Value, Status) {
	var result *Value
	status := StatusOk
	for _, s := range stmts {
		result, status = ip.execStatementText(s)
		if status != StatusOk {
			return result, status
		}
	}
	if result == nil {
		result = ip.Empty()
		ip.SetLast(result)
	}
	return result, status
}

// ExecBlock executes the textual body of a non-call-boundary block
// (an `if`/`while` arm) without converting Return to Ok: Return must
// keep propagating until it reaches the procedure invocation that
// owns it.
func (ip *Interp) ExecBlock(body string) (*Value, Status, error) {
	stmts, err := SplitScript(body)
	if err != nil {
		return nil, StatusError, err
	}
	result, status := ip.execScript(stmts)
	return result, status, nil
}

// ExecScript executes the textual body of a script Value (e.g. a
// procedure body) and converts a Return status to Ok: Return is
// absorbed at the enclosing call boundary, which for a procedure body
// is the call that executes it.
func (ip *Interp) ExecScript(body string) (*Value, Status, error) {
	stmts, err := SplitScript(body)
	if err != nil {
		return nil, StatusError, err
	}
	result, status := ip.execScript(stmts)
	if status == StatusReturn {
		status = StatusOk
	}
	return result, status, nil
}

// Eval splits and executes text as a top-level script, returning its
// final value. A non-Error terminal status (Break/Continue/Return/Exit
// escaping to the top) is not itself an error; only Status == Error
// is surfaced as a Go error.
func (ip *Interp) Eval(text string) (*Value, error) {
	stmts, err := SplitScript(text)
	if err != nil {
		return nil, err
	}
	result, status := ip.execScript(stmts)
	if status == StatusError {
		return result, NewError(BadValue, result.String())
	}
	return result, nil
}

// EvalStatus is Eval's full-fidelity form, exposing the terminal
// Status alongside the result (needed by the CLI front-end to decide
// its process exit code).
func (ip *Interp) EvalStatus(text string) (*Value, Status, error) {
	stmts, err := SplitScript(text)
	if err != nil {
		return nil, StatusError, err
	}
	result, status := ip.execScript(stmts)
	return result, status, nil
}

// EvalStatement executes text as a single statement (not a script),
// exposing execStatementText to command handlers that need to run a
// brace-quoted block themselves (e.g. `if`/`while` conditions, which
// arrive as literal un-executed text).
func (ip *Interp) EvalStatement(text string) (*Value, Status) {
	return ip.execStatementText(text)
}

// Call invokes a callable Value directly with a pre-built argument
// vector (argv[0] conventionally the command's own name), bypassing
// tokenisation. Used by builtins that need to invoke another command
// programmatically.
func (ip *Interp) Call(cmd *Value, argv []*Value) Status {
	if !cmd.IsCallable() {
		return ip.SetError(fmt.Sprintf("not a proc: %s", cmd.String()))
	}
	argc := len(argv)
	if cmd.cmd.minArgc >= 0 && argc < cmd.cmd.minArgc ||
		cmd.cmd.maxArgc >= 0 && argc > cmd.cmd.maxArgc {
		return ip.SetError(fmt.Sprintf("bad usage, should be '%s %s'", cmd.String(), cmd.cmd.help))
	}
	return cmd.cmd.handler(ip, argv)
}
