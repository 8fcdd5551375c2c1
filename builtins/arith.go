package builtins

import "github.com/szl-lang/szl"

// registerArith installs the arithmetic and comparison operators
// szl_math.c provides, grounded on that file's +/-/*// and relational
// commands.
func registerArith(ip *szl.Interp) error {
	ops := []struct {
		name string
		fn   szl.Handler
	}{
		{"+", addCmd}, {"-", subCmd}, {"*", mulCmd}, {"/", divCmd},
		{"<", ltCmd}, {">", gtCmd}, {"==", eqCmd},
	}
	for _, op := range ops {
		if err := ip.RegisterCommand(op.name, 2, -1, "a b ...", op.fn); err != nil {
			return err
		}
	}
	return nil
}

// operands reports whether every argument converts cleanly to Int,
// along with both Int and Float readings (Float is always available
// since Int cleanly widens).
func operands(argv []*szl.Value) (ints []int64, floats []float64, allInt bool, err error) {
	allInt = true
	ints = make([]int64, len(argv)-1)
	floats = make([]float64, len(argv)-1)
	for i, a := range argv[1:] {
		if n, ierr := a.Int(); ierr == nil {
			ints[i] = n
			floats[i] = float64(n)
			continue
		}
		allInt = false
		f, ferr := a.Float()
		if ferr != nil {
			return nil, nil, false, ferr
		}
		floats[i] = f
	}
	return ints, floats, allInt, nil
}

func addCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	ints, floats, allInt, err := operands(argv)
	if err != nil {
		return ip.Fail(err)
	}
	if allInt {
		sum := int64(0)
		for _, n := range ints {
			sum += n
		}
		ip.SetLast(szl.NewInt(sum))
	} else {
		sum := 0.0
		for _, f := range floats {
			sum += f
		}
		ip.SetLast(szl.NewFloat(sum))
	}
	return szl.StatusOk
}

func subCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	ints, floats, allInt, err := operands(argv)
	if err != nil {
		return ip.Fail(err)
	}
	if allInt {
		if len(ints) == 1 {
			ip.SetLast(szl.NewInt(-ints[0]))
			return szl.StatusOk
		}
		acc := ints[0]
		for _, n := range ints[1:] {
			acc -= n
		}
		ip.SetLast(szl.NewInt(acc))
	} else {
		if len(floats) == 1 {
			ip.SetLast(szl.NewFloat(-floats[0]))
			return szl.StatusOk
		}
		acc := floats[0]
		for _, f := range floats[1:] {
			acc -= f
		}
		ip.SetLast(szl.NewFloat(acc))
	}
	return szl.StatusOk
}

func mulCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	ints, floats, allInt, err := operands(argv)
	if err != nil {
		return ip.Fail(err)
	}
	if allInt {
		acc := int64(1)
		for _, n := range ints {
			acc *= n
		}
		ip.SetLast(szl.NewInt(acc))
	} else {
		acc := 1.0
		for _, f := range floats {
			acc *= f
		}
		ip.SetLast(szl.NewFloat(acc))
	}
	return szl.StatusOk
}

func divCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	ints, floats, allInt, err := operands(argv)
	if err != nil {
		return ip.Fail(err)
	}
	if allInt {
		acc := ints[0]
		for _, n := range ints[1:] {
			if n == 0 {
				return ip.Fail(szl.Errorf(szl.BadValue, "division by zero"))
			}
			acc /= n
		}
		ip.SetLast(szl.NewInt(acc))
	} else {
		acc := floats[0]
		for _, f := range floats[1:] {
			acc /= f
		}
		ip.SetLast(szl.NewFloat(acc))
	}
	return szl.StatusOk
}

func ltCmd(ip *szl.Interp, argv []*szl.Value) szl.Status { return cmpCmd(ip, argv, -1) }
func gtCmd(ip *szl.Interp, argv []*szl.Value) szl.Status { return cmpCmd(ip, argv, 1) }

func cmpCmd(ip *szl.Interp, argv []*szl.Value, want int) szl.Status {
	_, floats, _, err := operands(argv)
	if err != nil {
		return ip.Fail(err)
	}
	ok := true
	for i := 1; i < len(floats); i++ {
		cur := sign(floats[i-1] - floats[i])
		if cur != want {
			ok = false
			break
		}
	}
	ip.SetLast(boolValue(ip, ok))
	return szl.StatusOk
}

func eqCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	for i := 2; i < len(argv); i++ {
		if !szl.Equal(argv[1], argv[i]) {
			ip.SetLast(boolValue(ip, false))
			return szl.StatusOk
		}
	}
	ip.SetLast(boolValue(ip, true))
	return szl.StatusOk
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

func boolValue(ip *szl.Interp, b bool) *szl.Value {
	if b {
		return ip.Int(1)
	}
	return ip.Int(0)
}
