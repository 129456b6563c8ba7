package token

import "bytes"

const (
	Open       = '<'
	Close      = '>'
	closeSlash = "</"
)

// OpenTag returns the text of the opening tag <name>.
func OpenTag(name string) string {
	return string(Open) + name + string(Close)
}

// CloseTag returns the text of the closing tag </name>.
func CloseTag(name string) string {
	return closeSlash + name + string(Close)
}

// TagName reads a tag starting at d[pos], which must be '<', and returns the
// name between '<' and the next '>' within d[:end] along with the offset
// just past the '>'.  ok is false if d[pos] is not '<' or no '>' follows.
func TagName(d []byte, pos, end int) (name string, next int, ok bool) {
	if pos >= end || d[pos] != Open {
		return "", pos, false
	}
	i := bytes.IndexByte(d[pos+1:end], Close)
	if i == -1 {
		return "", pos, false
	}
	return string(d[pos+1 : pos+1+i]), pos + 2 + i, true
}

// Index returns the offset of the first occurrence of lit in d[pos:end], or
// -1.
func Index(d []byte, pos, end int, lit string) int {
	if pos > end {
		return -1
	}
	i := bytes.Index(d[pos:end], []byte(lit))
	if i == -1 {
		return -1
	}
	return pos + i
}

// Balanced finds the close matching an already consumed open within
// d[pos:end].  Nesting depth starts at 1 and is tracked by counting the
// literal open and close substrings.  It returns the offset of the matching
// close and the offset just past it.
func Balanced(d []byte, pos, end int, open, close string) (bodyEnd, next int, ok bool) {
	bOpen, bClose := []byte(open), []byte(close)
	depth := 1
	for i := pos; i < end; {
		j := bytes.IndexByte(d[i:end], Open)
		if j == -1 {
			break
		}
		i += j
		switch {
		case bytes.HasPrefix(d[i:end], bOpen):
			depth++
			i += len(bOpen)
		case bytes.HasPrefix(d[i:end], bClose):
			depth--
			if depth == 0 {
				return i, i + len(bClose), true
			}
			i += len(bClose)
		default:
			i++
		}
	}
	return -1, -1, false
}
