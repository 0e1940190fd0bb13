package internal

import (
	"errors"
	"strings"
)

// WordWrap wraps text at width characters using brk as line break.
// Lines are broken at spaces; existing occurrences of brk start a new line.
// With cut, words longer than width are split hard.
func WordWrap(text string, width int, brk string, cut bool) (string, error) {
	if text == "" {
		return "", nil
	}
	if brk == "" {
		return "", errors.New(ErrMsgEmptyBreak)
	}
	if width == 0 && cut {
		return "", errors.New(ErrMsgCutWithZeroWidth)
	}

	src := []rune(text)
	brkRunes := []rune(brk)
	brkLen := len(brkRunes)

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/max(width, 1)*len(brk))

	lastStart, lastSpace := 0, 0
	current := 0
	for ; current < len(src); current++ {
		switch {
		case src[current] == brkRunes[0] && current+brkLen < len(src) && hasRunesAt(src, current, brkRunes):
			// existing break: copy through it and restart the line
			sb.WriteString(string(src[lastStart : current+brkLen]))
			current += brkLen - 1
			lastStart = current + 1
			lastSpace = lastStart
		case src[current] == ' ':
			if current-lastStart >= width {
				sb.WriteString(string(src[lastStart:current]))
				sb.WriteString(brk)
				lastStart = current + 1
			}
			lastSpace = current
		case current-lastStart >= width && cut && lastStart >= lastSpace:
			sb.WriteString(string(src[lastStart:current]))
			sb.WriteString(brk)
			lastStart = current
			lastSpace = current
		case current-lastStart >= width && lastStart < lastSpace:
			sb.WriteString(string(src[lastStart:lastSpace]))
			sb.WriteString(brk)
			lastSpace++
			lastStart = lastSpace
		}
	}

	if lastStart != current {
		sb.WriteString(string(src[lastStart:current]))
	}
	return sb.String(), nil
}

func hasRunesAt(src []rune, at int, needle []rune) bool {
	if at+len(needle) > len(src) {
		return false
	}
	for i, r := range needle {
		if src[at+i] != r {
			return false
		}
	}
	return true
}
