package day1

import "strings"

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// CalibrationValue combines the first and last digit of line into a two-digit
// number. Spelled-out digits are recognised when words is set, and they may
// overlap ("twone" starts with 2 and ends with 1). ok is false, and the value
// zero, when the line holds no digit at all.
func CalibrationValue(line string, words bool) (value int, ok bool) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, found := digitAt(line, i, words); found {
			first = d
			break
		}
	}
	if first < 0 {
		return 0, false
	}

	for i := len(line) - 1; i >= 0; i-- {
		if d, found := digitAt(line, i, words); found {
			last = d
			break
		}
	}
	return first*10 + last, true
}

// digitAt reports the digit starting at byte offset i.
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for n, w := range digitWords {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}
