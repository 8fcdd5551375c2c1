package builtins

import "github.com/szl-lang/szl"

// registerDict installs the dict commands szl_dict.c provides:
// construction from key/value pairs, lookup, and insertion.
func registerDict(ip *szl.Interp) error {
	if err := ip.RegisterCommand("dict.new", 1, -1, "?key value ...?", dictNewCmd); err != nil {
		return err
	}
	if err := ip.RegisterCommand("dict.get", 3, 3, "dict key", dictGetCmd); err != nil {
		return err
	}
	return ip.RegisterCommand("dict.set", 4, 4, "dict key value", dictSetCmd)
}

func dictNewCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	pairs := argv[1:]
	if len(pairs)%2 != 0 {
		return ip.Fail(szl.Errorf(szl.Usage, "dict.new requires an even number of key/value arguments"))
	}
	items := make([]*szl.Value, len(pairs))
	for i, p := range pairs {
		items[i] = p.Ref()
	}
	ip.SetLast(szl.NewDict(items...))
	return szl.StatusOk
}

func dictGetCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	v, ok := argv[1].DictGet(argv[2])
	if !ok {
		return ip.Fail(szl.Errorf(szl.BadIndex, "no such key: %s", argv[2].String()))
	}
	ip.SetLast(v.Ref())
	return szl.StatusOk
}

// dictSetCmd returns a new dict equal to argv[1] with key bound to
// value, leaving argv[1] untouched (mirrors list.append's
// non-mutating stance, since dicts may be shared).
func dictSetCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	d := argv[1].Copy()
	if err := d.DictSet(argv[2].Ref(), argv[3].Ref()); err != nil {
		return ip.Fail(err)
	}
	ip.SetLast(d)
	return szl.StatusOk
}
