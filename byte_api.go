package rgx

// FindBytes returns the leftmost match of the pattern in b, or nil if
// there is none.
func (re *Regexp) FindBytes(b []byte) []byte {
	loc := re.FindStringIndex(string(b))
	if loc == nil {
		return nil
	}
	return b[loc[0]:loc[1]]
}

// FindBytesIndex returns the [start, end) byte range of the leftmost
// match in b, or nil if there is none.
func (re *Regexp) FindBytesIndex(b []byte) []int {
	return re.FindStringIndex(string(b))
}

// FindBytesSubmatch returns the leftmost match in b and its submatches,
// or nil if there is none.
func (re *Regexp) FindBytesSubmatch(b []byte) [][]byte {
	submatches := re.FindStringSubmatch(string(b))
	if submatches == nil {
		return nil
	}
	result := make([][]byte, len(submatches))
	for i, s := range submatches {
		if s != "" {
			result[i] = []byte(s)
		}
	}
	return result
}

// FindAllBytes returns every successive non-overlapping match in b.
// n < 0 means return all of them.
func (re *Regexp) FindAllBytes(b []byte, n int) [][]byte {
	indices := re.FindAllBytesIndex(b, n)
	if indices == nil {
		return nil
	}
	result := make([][]byte, len(indices))
	for i, m := range indices {
		result[i] = b[m[0]:m[1]]
	}
	return result
}

// FindAllBytesIndex is like FindAllBytes but returns only each match's
// [start, end) byte range.
func (re *Regexp) FindAllBytesIndex(b []byte, n int) [][]int {
	return re.FindAllStringIndex(string(b), n)
}

// FindAllBytesSubmatch is like FindAllBytes but includes every capture
// group's submatch alongside the whole match.
func (re *Regexp) FindAllBytesSubmatch(b []byte, n int) [][][]byte {
	all := re.FindAllStringSubmatch(string(b), n)
	if all == nil {
		return nil
	}
	result := make([][][]byte, len(all))
	for i, m := range all {
		result[i] = make([][]byte, len(m))
		for j, s := range m {
			if s != "" {
				result[i][j] = []byte(s)
			}
		}
	}
	return result
}

// MatchBytes reports whether b contains any match of the pattern.
func (re *Regexp) MatchBytes(b []byte) bool {
	return re.MatchString(string(b))
}
