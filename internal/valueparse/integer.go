package valueparse

import (
	"fmt"
	"strconv"
)

// OverflowError reports an integer literal that parses but doesn't
// fit in a signed 64-bit value.
type OverflowError struct {
	Field string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("valueparse: %q overflows int64", e.Field)
}

// maxFastDigits bounds the hand-rolled loop: 18 decimal digits always
// fits comfortably within int64's ~19-digit range even with a sign
// byte, so anything shorter never needs overflow checking.
const maxFastDigits = 18

// ParseInt parses a signed 64-bit integer from field, which the
// scanner has already validated as INTEGER-shaped. Short fields go
// through a hand-rolled digit accumulation loop; longer ones fall
// back to strconv, which detects overflow for us.
func ParseInt(field []byte) (int64, error) {
	neg := false
	i := 0
	if len(field) > 0 && (field[0] == '+' || field[0] == '-') {
		neg = field[0] == '-'
		i = 1
	}
	digits := len(field) - i
	if digits > 0 && digits <= maxFastDigits {
		var v int64
		for ; i < len(field); i++ {
			v = v*10 + int64(field[i]-'0')
		}
		if neg {
			v = -v
		}
		return v, nil
	}

	v, err := strconv.ParseInt(string(field), 10, 64)
	if err != nil {
		return 0, &OverflowError{Field: string(field)}
	}
	return v, nil
}
