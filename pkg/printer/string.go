package printer

// longestCommonPrefix returns the longest string that is a prefix of every
// item, or "" if items is empty.
func longestCommonPrefix(items []string) string {
	if len(items) == 0 {
		return ""
	}

	current := items[0]
	for _, item := range items[1:] {
		if current == "" {
			break
		}
		n := 0
		for n < len(current) && n < len(item) && current[n] == item[n] {
			n++
		}
		current = current[:n]
	}
	return current
}

// longestCommonSuffix returns the longest string that is a suffix of every
// item, or "" if items is empty.
func longestCommonSuffix(items []string) string {
	reversed := make([]string, len(items))
	for i, item := range items {
		reversed[i] = reverseString(item)
	}
	return reverseString(longestCommonPrefix(reversed))
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
