package szl

import "strings"

// RepBits identifies which representations of a Value are currently
// cached and valid.
type RepBits uint16

const (
	RepString RepBits = 1 << iota
	RepWide
	RepInt
	RepFloat
	RepList
	RepDict
	RepCode
)

// Flags carries per-Value state beyond the cached representations.
type Flags uint8

const (
	// FlagReadOnly: no further mutation is permitted.
	FlagReadOnly Flags = 1 << iota
	// FlagHashed: the cached hash is valid.
	FlagHashed
	// FlagSorted: the Dict/List pair storage is sorted by key hash.
	FlagSorted
)

// Handler is a native command implementation. argv[0] is the command
// name as invoked; argv[1:] are the arguments. The handler reports its
// outcome by calling ip.SetLast or ip.SetError and returning the
// matching Status.
type Handler func(ip *Interp, argv []*Value) Status

// commandMeta makes a Value callable as the head of a statement.
type commandMeta struct {
	handler Handler
	minArgc int
	maxArgc int // -1 = unbounded
	help    string
	priv    any
	destroy func(any)
}

// Value is the single polymorphic datum of the language: a
// reference-counted, tagged union of representations that lazily
// materialises and caches alternate views of itself.
//
// A Value with refs == 0 has been released and must not be accessed;
// Unref recursively releases owned children once their own count
// reaches zero, keeping the refcount-sum-equals-ownership-edges
// invariant true even though the host runtime is garbage collected.
type Value struct {
	refs  int32
	bits  RepBits
	flags Flags
	hash  uint32

	interp *Interp // optional owning interpreter; nothing in this module sets it (Copy carries it over)

	str  string
	wide []rune
	i    int64
	f    float64

	// list backs RepList, and RepDict reuses the exact same storage
	// (a Dict is physically a List of even length) so a Value can carry
	// RepList|RepDict simultaneously over one slice. code backs RepCode.
	list []*Value
	code []*Value

	cmd *commandMeta
}

// newValue allocates a Value with refcount 1.
func newValue() *Value {
	return &Value{refs: 1}
}

// Ref increments the reference count and returns v, for the common
// "take a reference and store it" pattern.
func (v *Value) Ref() *Value {
	if v == nil {
		return nil
	}
	v.refs++
	return v
}

// Unref decrements the reference count, releasing owned children once
// it reaches zero. Callers must not touch v after its count reaches
// zero through their release.
func (v *Value) Unref() {
	if v == nil {
		return
	}
	v.refs--
	if v.refs > 0 {
		return
	}
	for _, child := range v.list {
		child.Unref()
	}
	for _, child := range v.code {
		child.Unref()
	}
	if v.cmd != nil && v.cmd.destroy != nil {
		v.cmd.destroy(v.cmd.priv)
	}
}

// RefCount reports the current reference count; exposed for tests that
// check the ownership-forest invariant.
func (v *Value) RefCount() int32 {
	if v == nil {
		return 0
	}
	return v.refs
}

// ----------------------------------------------------------------------------
// Construction
// ----------------------------------------------------------------------------

// NewString copies bytes into a fresh String Value.
func NewString(s string) *Value {
	v := newValue()
	v.str = s
	v.bits = RepString
	return v
}

// NewStringOwned is identical to NewString in Go, where strings are
// immutable byte sequences already owned by the caller's conversion;
// kept as a distinct name to mirror a construction API that
// distinguishes copying a buffer from taking ownership of one.
func NewStringOwned(buf []byte) *Value {
	return NewString(string(buf))
}

// NewInt creates a fresh Integer Value. Use (*Interp).Int to go
// through the interpreter's small-integer singleton cache.
func NewInt(i int64) *Value {
	v := newValue()
	v.i = i
	v.bits = RepInt
	return v
}

// NewFloat creates a Float Value.
func NewFloat(f float64) *Value {
	v := newValue()
	v.f = f
	v.bits = RepFloat
	return v
}

// NewList creates a List Value owning the given items (each item's
// reference is taken over by the new list).
func NewList(items ...*Value) *Value {
	v := newValue()
	v.list = items
	v.bits = RepList
	return v
}

// NewDict creates a Dict Value from alternating key/value pairs,
// physically stored as a List.
func NewDict(pairs ...*Value) *Value {
	v := newValue()
	v.list = pairs
	v.bits = RepList | RepDict
	return v
}

// NewEmpty returns a fresh empty-string Value.
func NewEmpty() *Value {
	return NewString("")
}

// NewCommand creates a callable Value. If name is non-empty, the
// caller is expected to bind it in the global frame (Interp.RegisterCommand
// does this); NewCommand itself only constructs the Value.
func NewCommand(name string, handler Handler, minArgc, maxArgc int, help string, priv any, destroy func(any)) *Value {
	v := NewString(name)
	v.cmd = &commandMeta{
		handler: handler,
		minArgc: minArgc,
		maxArgc: maxArgc,
		help:    help,
		priv:    priv,
		destroy: destroy,
	}
	return v
}

// IsCallable reports whether v carries command metadata.
func (v *Value) IsCallable() bool {
	return v != nil && v.cmd != nil
}

// ----------------------------------------------------------------------------
// Flags
// ----------------------------------------------------------------------------

// ReadOnly reports whether v rejects further mutation.
func (v *Value) ReadOnly() bool { return v != nil && v.flags&FlagReadOnly != 0 }

// SetReadOnly marks v read-only in place (used for interned singletons
// and for dict keys, which the dictionary algorithm marks read-only
// once stored).
func (v *Value) SetReadOnly() { v.flags |= FlagReadOnly }

// invalidate clears every cached representation except String,
// regenerating String first if it is not already cached, and clears
// HASHED/SORTED since a mutation invalidates any cached hash or sort
// order. Called before a mutation takes effect.
func (v *Value) invalidate() {
	_ = v.canonicalString() // force String rep before dropping the others
	v.bits = RepString
	v.wide = nil
	v.list = nil
	v.code = nil
	v.flags &^= FlagHashed | FlagSorted
}

// ----------------------------------------------------------------------------
// Mutation
// ----------------------------------------------------------------------------

// StrAppend extends the String representation of v, invalidating every
// other cached representation. Fails with ReadOnly if v is read-only.
func (v *Value) StrAppend(s string) error {
	if v.ReadOnly() {
		return Errorf(ReadOnly, "value is read-only")
	}
	cur := v.canonicalString()
	v.invalidate()
	v.str = cur + s
	return nil
}

// ListAppend appends child (taking ownership of the caller's
// reference) to v's List representation.
func (v *Value) ListAppend(child *Value) error {
	if v.ReadOnly() {
		return Errorf(ReadOnly, "value is read-only")
	}
	items, err := v.ensureList()
	if err != nil {
		return err
	}
	v.list = append(items, child)
	v.bits = (v.bits &^ (RepDict)) | RepList
	v.bits &^= RepString | RepWide | RepInt | RepFloat | RepCode
	v.str = ""
	v.flags &^= FlagHashed | FlagSorted
	return nil
}

// ListSet replaces the element at index i in v's List representation.
func (v *Value) ListSet(i int, child *Value) error {
	if v.ReadOnly() {
		return Errorf(ReadOnly, "value is read-only")
	}
	items, err := v.ensureList()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(items) {
		return Errorf(BadIndex, "list index %d out of range", i)
	}
	items[i].Unref()
	items[i] = child
	v.bits &^= RepString | RepWide | RepInt | RepFloat | RepCode
	v.bits |= RepList
	v.str = ""
	// Clearing HASHED keeps the cached hash in step with the new string
	// form; clearing SORTED makes a dict re-sort its pairs before the
	// next lookup instead of searching a stale order.
	v.flags &^= FlagHashed | FlagSorted
	return nil
}

// ListExtend appends every element of other's List representation.
func (v *Value) ListExtend(other *Value) error {
	items, err := other.ensureList()
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := v.ListAppend(it.Ref()); err != nil {
			return err
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Equality & truthiness
// ----------------------------------------------------------------------------

// Equal reports whether v and other have equal canonical string forms,
// comparing cached hashes first as a fast-path inequality check.
func Equal(v, other *Value) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return v.canonicalString() == other.canonicalString()
	}
	vh, oh := v.Hash(), other.Hash()
	if vh != oh {
		return false
	}
	return v.canonicalString() == other.canonicalString()
}

// Truthy applies the language's first-match truthiness rules: an
// Integer or Float is truthy unless zero; a cached String is truthy
// unless it is empty or the single character "0"; a List without a
// cached String is truthy unless it has no elements.
func (v *Value) Truthy() bool {
	if v == nil {
		return false
	}
	switch {
	case v.bits&RepInt != 0:
		return v.i != 0
	case v.bits&RepFloat != 0:
		return v.f != 0
	case v.bits&RepString != 0:
		s := v.str
		return !(len(s) == 0 || (len(s) == 1 && s[0] == '0'))
	case v.bits&RepList != 0:
		return len(v.list) != 0
	default:
		s := v.canonicalString()
		return !(len(s) == 0 || (len(s) == 1 && s[0] == '0'))
	}
}

// Hash returns the Jenkins one-at-a-time hash of v's canonical string
// form, computing and caching it if HASHED is not set.
func (v *Value) Hash() uint32 {
	if v == nil {
		return jenkinsHash("")
	}
	if v.flags&FlagHashed != 0 {
		return v.hash
	}
	v.hash = jenkinsHash(v.canonicalString())
	v.flags |= FlagHashed
	return v.hash
}

// canonicalString returns v's string form through String(), treating
// a nil Value as empty; used internally by Hash/Equal/invalidate.
func (v *Value) canonicalString() string {
	if v == nil {
		return ""
	}
	return v.String()
}

// Copy creates a shallow duplicate of v: children in List/Code are
// re-referenced (not deep-copied), matching the Value type's ownership
// rules.
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	c := newValue()
	c.bits = v.bits &^ RepDict | (v.bits & RepDict)
	c.flags = v.flags &^ FlagReadOnly
	c.hash = v.hash
	c.interp = v.interp
	c.str = v.str
	c.i = v.i
	c.f = v.f
	if v.wide != nil {
		c.wide = append([]rune(nil), v.wide...)
	}
	if v.list != nil {
		c.list = make([]*Value, len(v.list))
		for i, it := range v.list {
			c.list[i] = it.Ref()
		}
	}
	if v.code != nil {
		c.code = make([]*Value, len(v.code))
		for i, it := range v.code {
			c.code[i] = it.Ref()
		}
	}
	return c
}

// needsBraces reports whether s must be wrapped in {...} when
// rendered as a list element.
func needsBraces(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsAny(s, " \t\r\n{}")
}
