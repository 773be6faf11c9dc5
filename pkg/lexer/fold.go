package lexer

// Upper folds an ASCII lower-case letter to upper case and leaves every
// other byte alone.
func Upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// CompareFold orders a and b byte-wise, treating a-z as equal to A-Z.
// It returns -1, 0 or +1. Keyword tables are sorted by this order.
func CompareFold(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := Upper(a[i]), Upper(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
