package szl

import "log"

// DefaultRecursionLimit is the nesting depth at which statement
// execution fails with NestingLimit unless raised by
// SetRecursionLimit.
const DefaultRecursionLimit = 64

// smallIntCacheSize is the size of the small non-negative integer
// singleton cache, kept at 16 to match the original interpreter's
// small-integer cache constant.
const smallIntCacheSize = 16

// Logger is the minimal diagnostic sink an Interp uses for internal
// events (recursion-limit trips, extension loads). It is never
// used for command output, which always flows through interp.last.
// log.New satisfies this interface directly.
type Logger interface {
	Printf(format string, args ...any)
}

// Interp owns the global frame, the shared singletons, the extension
// registry, and the entry points external code calls.
type Interp struct {
	global  *Frame
	current *Frame
	depth   int
	last    *Value

	recursionLimit int

	smallInts [smallIntCacheSize]*Value
	empty     *Value
	space     *Value

	exts map[string]bool
	libs []string
	seed uint64

	// Streams holds named open Stream handles; core owns the map,
	// never the transport, and allocates no handles itself.
	Streams map[string]Stream

	Logger Logger
}

// New creates an interpreter with its global frame and singletons
// initialised, ready to Eval scripts.
func New() *Interp {
	ip := &Interp{
		recursionLimit: DefaultRecursionLimit,
		exts:           make(map[string]bool),
		Streams:        make(map[string]Stream),
		Logger:         log.New(logDiscard{}, "", 0),
		seed:           0x9e3779b9,
	}
	ip.empty = NewEmpty()
	ip.empty.SetReadOnly()
	ip.space = NewString(" ")
	ip.space.SetReadOnly()
	for i := range ip.smallInts {
		v := NewInt(int64(i))
		v.SetReadOnly()
		ip.smallInts[i] = v
	}

	global := &Frame{locals: NewDict(), args: NewList()}
	ip.global = global
	ip.current = global
	ip.last = ip.empty.Ref()

	ip.bindSingleton("_", ip.empty.Ref())
	ip.bindSingleton("@", NewList())
	return ip
}

func (ip *Interp) bindSingleton(name string, v *Value) {
	_ = ip.global.setLocal(name, v)
}

type logDiscard struct{}

func (logDiscard) Write(p []byte) (int, error) { return len(p), nil }

// SetRecursionLimit overrides the nesting depth at which statement
// execution fails with NestingLimit. n is clamped to be at least 1.
func (ip *Interp) SetRecursionLimit(n int) {
	if n < 1 {
		n = 1
	}
	ip.recursionLimit = n
}

// Int returns a reference to the small-integer singleton for i if it
// is in range [0, smallIntCacheSize), else a fresh Integer Value.
func (ip *Interp) Int(i int64) *Value {
	if i >= 0 && i < smallIntCacheSize {
		return ip.smallInts[i].Ref()
	}
	return NewInt(i)
}

// Empty returns a reference to the shared empty-string singleton.
func (ip *Interp) Empty() *Value { return ip.empty.Ref() }

// Last returns the Value most recently returned by any command,
// without taking a new reference.
func (ip *Interp) Last() *Value { return ip.last }

// SetLast replaces interp.last, taking ownership of v's reference and
// releasing the previous one. Command handlers call this to report
// their result.
func (ip *Interp) SetLast(v *Value) {
	if v == nil {
		v = ip.Empty()
	}
	prev := ip.last
	ip.last = v
	prev.Unref()
}

// SetError sets interp.last to a String Value carrying msg and
// returns StatusError, the idiom every built-in command uses to
// report failure.
func (ip *Interp) SetError(msg string) Status {
	ip.SetLast(NewString(msg))
	return StatusError
}

// Fail is SetError applied to an *Error's message, for commands that
// bubble up a typed error.
func (ip *Interp) Fail(err error) Status {
	if err == nil {
		return ip.SetError("")
	}
	return ip.SetError(err.Error())
}
