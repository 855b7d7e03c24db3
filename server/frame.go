package server

// Frame reports how many bytes at the start of buf form a complete message.
//
// A message that starts with `{` is a query and ends at its matching `}`.
// Any other message containing braces ends after the last definition whose
// braces are balanced. A message without braces ends at the last newline.
func Frame(buf []byte) (int, bool) {
	start := 0
	for start < len(buf) && isSpace(buf[start]) {
		start++
	}
	if start == len(buf) {
		return 0, false
	}

	depth, end, braces := 0, 0, false
	for i := start; i < len(buf); i++ {
		switch buf[i] {
		case '{':
			depth++
			braces = true
		case '}':
			braces = true
			depth--
			if depth <= 0 {
				depth = 0
				end = i + 1
				if buf[start] == '{' {
					return end, true
				}
			}
		}
	}
	if braces {
		return end, end > 0
	}
	for i := len(buf) - 1; i >= start; i-- {
		if buf[i] == '\n' {
			return i + 1, true
		}
	}
	return 0, false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == ','
}
