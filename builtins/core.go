package builtins

import "github.com/szl-lang/szl"

// registerCore installs set/unset/incr/catch, grounded on szl_obj.c's
// object-level commands and libszl.c's try/catch built-in.
func registerCore(ip *szl.Interp) error {
	if err := ip.RegisterCommand("set", 2, 3, "name ?value?", setCmd); err != nil {
		return err
	}
	if err := ip.RegisterCommand("unset", 2, 2, "name", unsetCmd); err != nil {
		return err
	}
	if err := ip.RegisterCommand("incr", 2, 3, "name ?delta?", incrCmd); err != nil {
		return err
	}
	return ip.RegisterCommand("catch", 2, 3, "script ?varName?", catchCmd)
}

// set/unset/incr write through SetInCaller/UnsetInCaller rather than
// the *Current variants: every command runs in its own throwaway
// per-statement frame, so a binding that must outlive the call has to
// land in the frame of whoever invoked it.
func setCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	name := argv[1].String()
	if len(argv) == 2 {
		v, err := ip.Var(name)
		if err != nil {
			return ip.Fail(err)
		}
		ip.SetLast(v.Ref())
		return szl.StatusOk
	}
	val := argv[2].Ref()
	if err := ip.SetInCaller(name, val.Ref()); err != nil {
		val.Unref()
		return ip.Fail(err)
	}
	ip.SetLast(val)
	return szl.StatusOk
}

func unsetCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	if err := ip.UnsetInCaller(argv[1].String()); err != nil {
		return ip.Fail(err)
	}
	ip.SetLast(ip.Empty())
	return szl.StatusOk
}

func incrCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	name := argv[1].String()
	delta := int64(1)
	if len(argv) == 3 {
		d, err := argv[2].Int()
		if err != nil {
			return ip.Fail(err)
		}
		delta = d
	}
	cur, err := ip.Var(name)
	n := int64(0)
	if err == nil {
		n, err = cur.Int()
		if err != nil {
			return ip.Fail(err)
		}
	}
	next := szl.NewInt(n + delta)
	if err := ip.SetInCaller(name, next.Ref()); err != nil {
		next.Unref()
		return ip.Fail(err)
	}
	ip.SetLast(next)
	return szl.StatusOk
}

// catchCmd runs argv[1] as a script, trapping any terminal status
// (Error/Break/Continue/Return) into the caller's result rather than
// propagating it. It always itself returns Ok, with a numeric status
// code as its result (0 Ok, 1 Error, 2 Return, 3 Break, 4 Continue);
// when a variable name is given, the script's own result is
// additionally bound there.
func catchCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	result, status, err := ip.ExecBlock(argv[1].String())
	if err != nil {
		return ip.Fail(err)
	}
	if len(argv) == 3 {
		if serr := ip.SetInCaller(argv[2].String(), result.Ref()); serr != nil {
			return ip.Fail(serr)
		}
	}
	ip.SetLast(szl.NewInt(int64(statusCode(status))))
	return szl.StatusOk
}

func statusCode(s szl.Status) int {
	switch s {
	case szl.StatusOk:
		return 0
	case szl.StatusError:
		return 1
	case szl.StatusReturn:
		return 2
	case szl.StatusBreak:
		return 3
	case szl.StatusContinue:
		return 4
	default:
		return -1
	}
}
