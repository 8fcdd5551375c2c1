package builtins

import "github.com/szl-lang/szl"

// registerList installs the list commands szl_list.c's C
// equivalents cover: construction, length, append, and indexed
// access.
func registerList(ip *szl.Interp) error {
	cmds := []struct {
		name     string
		min, max int
		help     string
		fn       szl.Handler
	}{
		{"list.new", 1, -1, "?item ...?", listNewCmd},
		{"list.len", 2, 2, "list", listLenCmd},
		{"list.append", 3, 3, "list item", listAppendCmd},
		{"list.index", 3, 3, "list index", listIndexCmd},
	}
	for _, c := range cmds {
		if err := ip.RegisterCommand(c.name, c.min, c.max, c.help, c.fn); err != nil {
			return err
		}
	}
	return nil
}

func listNewCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	items := make([]*szl.Value, len(argv)-1)
	for i, a := range argv[1:] {
		items[i] = a.Ref()
	}
	ip.SetLast(szl.NewList(items...))
	return szl.StatusOk
}

func listLenCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	items, err := argv[1].List()
	if err != nil {
		return ip.Fail(err)
	}
	ip.SetLast(ip.Int(int64(len(items))))
	return szl.StatusOk
}

// listAppendCmd returns a new list holding L's elements plus item; it
// does not mutate L, since the caller's reference to L may be shared
// or read-only.
func listAppendCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	items, err := argv[1].List()
	if err != nil {
		return ip.Fail(err)
	}
	out := make([]*szl.Value, len(items)+1)
	for i, it := range items {
		out[i] = it.Ref()
	}
	out[len(items)] = argv[2].Ref()
	ip.SetLast(szl.NewList(out...))
	return szl.StatusOk
}

func listIndexCmd(ip *szl.Interp, argv []*szl.Value) szl.Status {
	items, err := argv[1].List()
	if err != nil {
		return ip.Fail(err)
	}
	i, err := argv[2].Int()
	if err != nil {
		return ip.Fail(err)
	}
	if i < 0 || int(i) >= len(items) {
		return ip.Fail(szl.Errorf(szl.BadIndex, "list index %d out of range", i))
	}
	ip.SetLast(items[i].Ref())
	return szl.StatusOk
}
