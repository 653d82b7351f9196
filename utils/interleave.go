package utils

// Interleave alternates the elements of a and b, starting with a. When one
// slice runs out the rest of the other is appended as is.
func Interleave(a []string, b []string) []string {
	result := make([]string, 0, len(a)+len(b))

	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if i < len(a) {
			result = append(result, a[i])
		}
		if i < len(b) {
			result = append(result, b[i])
		}
	}

	return result
}
