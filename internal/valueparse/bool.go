package valueparse

// ParseBool interprets a BOOL-shaped field. The scanner has already
// validated it against t/true/f/false case-insensitively, so the
// parser only needs to look at the first byte: anything starting with
// 'f'/'F' is false, everything else is true.
func ParseBool(field []byte) bool {
	if len(field) == 0 {
		return false
	}
	return field[0] != 'f' && field[0] != 'F'
}
