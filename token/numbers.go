package token

// number scans a numeric literal at the start of d and returns its length
// in bytes, whether it is a float, and whether it carries an int64 (L/LL)
// suffix.
func number(d []byte) (n int, isFloat, isLong bool, err error) {
	i := 0
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	if i+1 < len(d) && d[i] == '0' && (d[i+1] == 'x' || d[i+1] == 'X') {
		i += 2
		h := i
		for i < len(d) && hexDigit(d[i]) {
			i++
		}
		if i == h {
			return 0, false, false, ErrNumber
		}
		return i + longSuffix(d[i:]), false, longSuffix(d[i:]) > 0, nil
	}
	digits := asciiDigits(d[i:])
	f := fract(d[i+digits:])
	e := exp(d[i+digits+f:])
	if digits == 0 && f < 2 {
		// no integer part and no fractional digits
		return 0, false, false, ErrNumber
	}
	i += digits + f + e
	if f+e > 0 {
		return i, true, false, nil
	}
	ls := longSuffix(d[i:])
	return i + ls, false, ls > 0, nil
}

// longSuffix returns the length of an L or LL suffix at the start of d.
func longSuffix(d []byte) int {
	if len(d) > 1 && d[0] == 'L' && d[1] == 'L' {
		return 2
	}
	if len(d) > 0 && d[0] == 'L' {
		return 1
	}
	return 0
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	return 1 + asciiDigits(d[1:])
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
