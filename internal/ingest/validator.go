package ingest

// Acceptable reports whether a line may participate in sorting.
//
// A line is acceptable iff it is non-empty and every byte is an ASCII
// letter. Digits, whitespace, punctuation, and any other byte reject the
// line. Pure predicate; reporting rejected lines is the caller's job.
func Acceptable(line string) bool {
	if len(line) == 0 {
		return false
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
