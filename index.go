package arr

// normalizeIndex maps a possibly negative index onto [0, length) space.
// Negative values count back from the end so -1 is the last element and
// -length is the first. The result is not bounds checked.
func normalizeIndex(index, length int) int {
	if index < 0 {
		return index + length
	}
	return index
}

func inBounds(index, length int) bool {
	return index >= 0 && index < length
}

// clampIndex normalises index and pins it to [0, length].
func clampIndex(index, length int) int {
	index = normalizeIndex(index, length)
	if index < 0 {
		return 0
	}
	if index > length {
		return length
	}
	return index
}
