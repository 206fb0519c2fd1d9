package noise

// PermutationTable is a shuffled [0, size) sequence stored twice back to back,
// so index sums below 2*size need no wrap.
type PermutationTable []int

// BuildPermutationTable shuffles the identity sequence with src (Fisher-Yates)
// and duplicates it.
func BuildPermutationTable(size int, src Source) (PermutationTable, error) {
	if size <= 0 {
		return nil, &ConfigError{Field: "size", Value: size, Err: ErrInvalidSize}
	}

	p := make(PermutationTable, 2*size)
	for i := 0; i < size; i++ {
		p[i] = i
	}
	for i := size - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		p[i], p[j] = p[j], p[i]
	}
	copy(p[size:], p[:size])
	return p, nil
}

// Size returns the number of distinct entries.
func (p PermutationTable) Size() int {
	return len(p) / 2
}

// At returns the entry at i modulo Size, negative indices included.
func (p PermutationTable) At(i int) int {
	if i >= 0 && i < len(p) {
		return p[i]
	}
	return p[wrap(i, len(p)/2)]
}

// wrap is floor modulo: the result is always in [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
