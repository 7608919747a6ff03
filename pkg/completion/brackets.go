package completion

// consumedEnd returns the true replacement end for a bracketed
// insertion over [from, to): when the two characters immediately after
// to are "]]" they belong to the reference being completed and must be
// consumed, so re-running the same completion never stacks closing
// brackets.
func consumedEnd(sink Sink, to int) int {
	if sink.SliceText(to, to+2) == "]]" {
		return to + 2
	}
	return to
}
