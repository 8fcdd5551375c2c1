package builtins

import "github.com/szl-lang/szl"

// registerProc installs the procedure and control-flow commands
// szl_proc.c and szl_loop.c provide. A brace-quoted argument like
// {cond} or {body} arrives at the handler already stripped of its
// braces but not executed; these commands are exactly the ones
// responsible for executing such blocks themselves, which is why they
// (unlike arithmetic or list commands) call back into
// ip.EvalStatement/ip.ExecScript.
func registerProc(ip *szl.Interp) error {
	if err := ip.RegisterCommand("proc", 4, 4, "name {params} {body}", procCmd); err != nil {
		return err
	}
	if err := ip.RegisterCommand("return", 1, 2, "?value?", returnCmd); err != nil {
		return err
	}
	if err := ip.RegisterCommand("break", 1, 1, "", breakCmd); err != nil {
		return err
	}
	if err := ip.RegisterCommand("continue", 1, 1, "", continueCmd); err != nil {
		return err
	}
	if err := ip.RegisterCommand("while", 3, 3, "{cond} {body}", whileCmd); err != nil {
		return err
	}
	return ip.RegisterCommand("if", 3, 4, "{cond} {then} ?{else}?", ifCmd)
}

func procCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	name := argv[1].String()
	paramNames, err := argv[2].List()
	if err != nil {
		return ip.Fail(err)
	}
	params := make([]string, len(paramNames))
	for i, p := range paramNames {
		params[i] = p.String()
	}
	body := argv[3].String()

	handler := func(ip *szl.Interp, callArgv []*szl.Value) szl.Status {
		args := callArgv[1:]
		if len(args) != len(params) {
			return ip.Fail(szl.Errorf(szl.Usage, "%s expects %d argument(s), got %d", name, len(params), len(args)))
		}
		for i, p := range params {
			if err := ip.SetInCurrent(p, args[i].Ref()); err != nil {
				return ip.Fail(err)
			}
		}
		result, status, err := ip.ExecScript(body)
		if err != nil {
			return ip.Fail(err)
		}
		if status != szl.StatusError {
			ip.SetLast(result.Ref())
		}
		return status
	}
	if err := ip.RegisterCommand(name, len(params)+1, len(params)+1, "", handler); err != nil {
		return ip.Fail(err)
	}
	ip.SetLast(ip.Empty())
	return szl.StatusOk
}

func returnCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	if len(argv) == 2 {
		ip.SetLast(argv[1].Ref())
	}
	return szl.StatusReturn
}

func breakCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	ip.SetLast(ip.Empty())
	return szl.StatusBreak
}

func continueCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	ip.SetLast(ip.Empty())
	return szl.StatusContinue
}

func whileCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	cond := argv[1].String()
	body := argv[2].String()
	for {
		result, status := ip.EvalStatement(cond)
		if status != szl.StatusOk {
			return status
		}
		if !result.Truthy() {
			ip.SetLast(ip.Empty())
			return szl.StatusOk
		}
		_, status, err := ip.ExecBlock(body)
		if err != nil {
			return ip.Fail(err)
		}
		switch status {
		case szl.StatusBreak:
			ip.SetLast(ip.Empty())
			return szl.StatusOk
		case szl.StatusContinue, szl.StatusOk:
			// next iteration
		default:
			return status
		}
	}
}

func ifCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	result, status := ip.EvalStatement(argv[1].String())
	if status != szl.StatusOk {
		return status
	}
	if result.Truthy() {
		_, status, err := ip.ExecBlock(argv[2].String())
		if err != nil {
			return ip.Fail(err)
		}
		return status
	}
	if len(argv) == 4 {
		_, status, err := ip.ExecBlock(argv[3].String())
		if err != nil {
			return ip.Fail(err)
		}
		return status
	}
	ip.SetLast(ip.Empty())
	return szl.StatusOk
}
