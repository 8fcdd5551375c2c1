package szl

import (
	"strconv"
	"strings"
)

// String returns v's String representation, converting and caching it
// from any other cached representation if String is not already
// valid.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	if v.bits&RepString != 0 {
		return v.str
	}
	switch {
	case v.bits&RepWide != 0:
		v.str = string(v.wide)
	case v.bits&RepInt != 0:
		v.str = strconv.FormatInt(v.i, 10)
	case v.bits&RepFloat != 0:
		v.str = formatFloat(v.f)
	case v.bits&RepCode != 0:
		v.str = joinStatements(v.code)
	case v.bits&RepList != 0:
		v.str = joinListItems(v.list)
	}
	v.bits |= RepString
	return v.str
}

// formatFloat implements the "%.12f with trailing zeros stripped" rule.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 12, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" || s == "-" {
		s += "0"
	}
	return s
}

func joinListItems(items []*Value) string {
	parts := make([]string, len(items))
	for i, it := range items {
		s := it.String()
		if needsBraces(s) {
			s = "{" + s + "}"
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

func joinStatements(stmts []*Value) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// WideString returns v's rune-slice representation, decoding from
// String if necessary.
func (v *Value) WideString() []rune {
	if v == nil {
		return nil
	}
	if v.bits&RepWide != 0 {
		return v.wide
	}
	v.wide = []rune(v.String())
	v.bits |= RepWide
	return v.wide
}

// Int returns v's Integer representation, parsing from String if
// necessary. Float converts via numeric cast (truncation towards
// zero); every other representation must first become a String.
func (v *Value) Int() (int64, error) {
	if v == nil {
		return 0, Errorf(BadValue, "cannot convert nil to Int")
	}
	if v.bits&RepInt != 0 {
		return v.i, nil
	}
	if v.bits&RepFloat != 0 {
		v.i = int64(v.f)
		v.bits |= RepInt
		return v.i, nil
	}
	s := strings.TrimSpace(v.String())
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, Errorf(BadValue, "expected integer, got %q", v.String())
	}
	v.i = n
	v.bits |= RepInt
	return v.i, nil
}

// Float returns v's Float representation, parsing from String if
// necessary.
func (v *Value) Float() (float64, error) {
	if v == nil {
		return 0, Errorf(BadValue, "cannot convert nil to Float")
	}
	if v.bits&RepFloat != 0 {
		return v.f, nil
	}
	if v.bits&RepInt != 0 {
		v.f = float64(v.i)
		v.bits |= RepFloat
		return v.f, nil
	}
	s := strings.TrimSpace(v.String())
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, Errorf(BadValue, "expected float, got %q", v.String())
	}
	v.f = f
	v.bits |= RepFloat
	return v.f, nil
}

// ensureList returns v's List backing storage, parsing it from String
// (splitting on whitespace while honouring {}/[] nesting) if List is
// not already cached. Int/Float only convert to a List
// successfully when empty, matching the conversion matrix; in
// practice Int/Float Values are always non-empty so this path always
// fails for them, which is the intended "fail unless empty" behaviour.
func (v *Value) ensureList() ([]*Value, error) {
	if v.bits&RepList != 0 {
		return v.list, nil
	}
	if v.bits&(RepInt|RepFloat) != 0 && v.String() != "" {
		return nil, Errorf(BadValue, "cannot convert %q to List", v.String())
	}
	if v.bits&RepCode != 0 {
		v.list = append([]*Value(nil), v.code...)
		for _, it := range v.list {
			it.Ref()
		}
		v.bits |= RepList
		return v.list, nil
	}
	elems, err := parseListElements(v.String())
	if err != nil {
		return nil, err
	}
	items := make([]*Value, len(elems))
	for i, e := range elems {
		items[i] = NewString(e)
	}
	v.list = items
	v.bits |= RepList
	return v.list, nil
}

// List is the exported form of ensureList, for callers outside the
// package (commands implementing list operations).
func (v *Value) List() ([]*Value, error) { return v.ensureList() }

// ensureCode returns v's statement list, splitting String by newlines
// (honouring {}/[] nesting) if Code is not already cached.
func (v *Value) ensureCode() ([]*Value, error) {
	if v.bits&RepCode != 0 {
		return v.code, nil
	}
	if v.bits&RepList != 0 {
		v.code = append([]*Value(nil), v.list...)
		for _, it := range v.code {
			it.Ref()
		}
		v.bits |= RepCode
		return v.code, nil
	}
	stmts, err := SplitScript(v.String())
	if err != nil {
		return nil, err
	}
	code := make([]*Value, len(stmts))
	for i, s := range stmts {
		code[i] = NewString(s)
	}
	v.code = code
	v.bits |= RepCode
	return v.code, nil
}

// Code is the exported form of ensureCode.
func (v *Value) Code() ([]*Value, error) { return v.ensureCode() }
