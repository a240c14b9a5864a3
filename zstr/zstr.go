package zstr

import (
	"fmt"
	"strings"
)

func Body(str string, pos, length int) string {
	rs := []rune(str)
	rl := len(rs)
	if pos < 0 {
		pos = 0
	}
	if pos >= rl {
		return ""
	}
	if length == -1 {
		length = rl - pos
	}
	e := pos + length
	if e > rl {
		e = rl
	}
	if e-pos == 0 {
		return ""
	}
	return string(rs[pos:e])
}

func TruncatedCharsAtEnd(str string, chars int) (s string) {
	if str != "" {
		r := []rune(str)
		l := len(r)
		if chars < l {
			str = string(r[:l-chars])
		}
	}
	return str
}

// Concatinates parts, adding divider if prev or current added is not empty
// Doesn't add divider if prev ends in divider og next part begins with it
func Concat(divider string, parts ...any) string {
	var str string
	for _, p := range parts {
		s := fmt.Sprintf("%v", p)
		if s != "" {
			if str == "" {
				str = s
			} else {
				prevHas := strings.HasSuffix(str, divider)
				currentHas := strings.HasPrefix(s, divider)
				if !prevHas && !currentHas {
					str += divider
				}
				if prevHas && currentHas {
					str = TruncatedCharsAtEnd(str, 1)
				}
				str += s
			}
		}
	}
	return str
}

func Spaced(parts ...any) string {
	return Concat(" ", parts...)
}

// JoinFunc formats each item of slice with format and joins them with sep.
func JoinFunc[S any](slice []S, sep string, format func(s S) string) string {
	var sb strings.Builder
	for i, s := range slice {
		if i != 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(format(s))
	}
	return sb.String()
}

func HasPrefix(str, prefix string, rest *string) bool {
	if prefix == "" {
		*rest = str
		return true
	}
	if strings.HasPrefix(str, prefix) {
		*rest = str[len(prefix):]
		return true
	}
	return false
}

func HasSuffix(str, suffix string, rest *string) bool {
	if strings.HasSuffix(str, suffix) {
		*rest = str[:len(str)-len(suffix)]
		return true
	}
	return false
}

func RangeStringLines(str string, skipEmpty bool, f func(s string) bool) {
	for _, s := range strings.Split(str, "\n") {
		if skipEmpty && strings.TrimSpace(s) == "" {
			continue
		}
		if !f(s) {
			break
		}
	}
}
