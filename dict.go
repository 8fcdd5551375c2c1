package szl

import "sort"

// jenkinsHash computes the Jenkins one-at-a-time hash of s.
func jenkinsHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h += uint32(s[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// DictGet looks up key in d's Dict representation, returning the
// associated value (not a new reference) and whether it was found.
// On first lookup after a mutation, the pair storage is sorted by key
// hash and SORTED is set so later lookups can binary-search; hash
// collisions are resolved by a string-equality check.
func (d *Value) DictGet(key *Value) (*Value, bool) {
	pairs, err := d.ensureList()
	if err != nil {
		return nil, false
	}
	d.dictSort(pairs)
	kh := key.Hash()
	n := len(pairs) / 2
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if pairs[mid*2].Hash() < kh {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	for i := lo; i < n && pairs[i*2].Hash() == kh; i++ {
		if Equal(pairs[i*2], key) {
			return pairs[i*2+1], true
		}
	}
	return nil, false
}

// DictSet inserts or replaces the value bound to key in d, marking the
// stored key read-only. d must not itself be read-only.
func (d *Value) DictSet(key, value *Value) error {
	if d.ReadOnly() {
		return Errorf(ReadOnly, "value is read-only")
	}
	pairs, err := d.ensureList()
	if err != nil {
		return err
	}
	d.dictSort(pairs)
	kh := key.Hash()
	n := len(pairs) / 2
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if pairs[mid*2].Hash() < kh {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	for i := lo; i < n && pairs[i*2].Hash() == kh; i++ {
		if Equal(pairs[i*2], key) {
			pairs[i*2+1].Unref()
			pairs[i*2+1] = value
			d.str = ""
			d.bits &^= RepString | RepWide | RepInt | RepFloat | RepCode
			d.bits |= RepList | RepDict
			d.flags &^= FlagHashed
			return nil
		}
	}
	key.SetReadOnly()
	stored := key.Ref()
	if err := d.ListAppend(stored); err != nil {
		return err
	}
	if err := d.ListAppend(value); err != nil {
		return err
	}
	d.bits |= RepDict
	d.flags &^= FlagSorted
	return nil
}

// DictUnset removes key's binding from d, if present.
func (d *Value) DictUnset(key *Value) error {
	if d.ReadOnly() {
		return Errorf(ReadOnly, "value is read-only")
	}
	pairs, err := d.ensureList()
	if err != nil {
		return err
	}
	for i := 0; i < len(pairs); i += 2 {
		if Equal(pairs[i], key) {
			pairs[i].Unref()
			pairs[i+1].Unref()
			d.list = append(pairs[:i], pairs[i+2:]...)
			d.str = ""
			d.bits &^= RepString | RepWide | RepInt | RepFloat | RepCode
			d.bits |= RepList | RepDict
			d.flags &^= FlagHashed | FlagSorted
			return nil
		}
	}
	return nil
}

// dictSort sorts pairs by key hash in place and sets SORTED, unless
// already sorted.
func (d *Value) dictSort(pairs []*Value) {
	if d.flags&FlagSorted != 0 {
		return
	}
	n := len(pairs) / 2
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return pairs[idx[a]*2].Hash() < pairs[idx[b]*2].Hash()
	})
	sorted := make([]*Value, len(pairs))
	for i, j := range idx {
		sorted[i*2] = pairs[j*2]
		sorted[i*2+1] = pairs[j*2+1]
	}
	copy(pairs, sorted)
	d.list = pairs
	d.flags |= FlagSorted
}

// DictKeys returns the dict's keys in storage order (not a new
// reference to each).
func (d *Value) DictKeys() ([]*Value, error) {
	pairs, err := d.ensureList()
	if err != nil {
		return nil, err
	}
	keys := make([]*Value, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		keys = append(keys, pairs[i])
	}
	return keys, nil
}

// DictLen returns the number of key/value pairs in d.
func (d *Value) DictLen() (int, error) {
	pairs, err := d.ensureList()
	if err != nil {
		return 0, err
	}
	return len(pairs) / 2, nil
}
