package szl

import "strconv"

// Frame is one call-stack entry: a variable scope plus the arguments
// it was invoked with. caller is a non-owning link to the Frame that
// invoked this one (nil for the global frame).
type Frame struct {
	locals *Value // Dict
	args   *Value // List; also bound to "@" and "0","1",...
	caller *Frame

	// line is informational only (0 = unset); nothing in this module
	// sets or reads it.
	line int
}

// newFrame pushes a new activation on top of caller, copying caller's
// locals by reference: a copy of the caller's bindings, by value of
// the references, not a deep copy. args starts empty; bindArgs
// populates it and the positional/"@" bindings once the statement's
// tokens have been evaluated.
func newFrame(caller *Frame) (*Frame, error) {
	f := &Frame{
		locals: NewDict(),
		args:   NewList(),
		caller: caller,
	}
	if caller != nil {
		pairs, err := caller.locals.ensureList()
		if err != nil {
			return nil, err
		}
		for _, p := range pairs {
			if err := f.locals.ListAppend(p.Ref()); err != nil {
				return nil, err
			}
		}
		f.locals.flags &^= FlagSorted
	}
	return f, nil
}

// bindArgs records the fully-evaluated argument list as f.args and
// binds it under "@" and each element under its index. args' ownership
// (one reference per element) transfers into f.args; a further
// reference is taken for each of the "@" and positional locals
// entries, since those are distinct owners of the same Values.
func (f *Frame) bindArgs(args []*Value) error {
	f.args.Unref()
	f.args = NewList(args...)
	if err := f.setLocal("@", f.args.Ref()); err != nil {
		return err
	}
	for i, a := range args {
		if err := f.setLocal(strconv.Itoa(i), a.Ref()); err != nil {
			return err
		}
	}
	return nil
}

func (f *Frame) setLocal(name string, v *Value) error {
	return f.locals.DictSet(NewString(name), v)
}

func (f *Frame) getLocal(name string) (*Value, bool) {
	v, ok := f.locals.DictGet(NewString(name))
	return v, ok
}

// release tears down a popped frame, dropping every reference it
// holds: the locals dict's own reference (which cascades to every
// pair copied in by newFrame and every "@"/positional binding added by
// bindArgs) and the frame's own reference on args.
func (f *Frame) release() {
	f.locals.Unref()
	f.args.Unref()
}
