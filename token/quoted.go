package token

import (
	"bytes"
	"fmt"
	"strconv"
)

// Quote renders s as a double-quoted cfg string literal.
func Quote(s string) string {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if c < 0x20 {
				fmt.Fprintf(buf, `\x%02x`, c)
				continue
			}
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

// QuotedToString returns the value of a quoted string literal, quotes
// included in d. The tokenizer validates escapes, so malformed input here
// degrades to a best-effort literal reading.
func QuotedToString(d []byte) string {
	if len(d) >= 2 && d[0] == '"' && d[len(d)-1] == '"' {
		d = d[1 : len(d)-1]
	}
	buf := bytes.NewBuffer(nil)
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c != '\\' || i == len(d)-1 {
			buf.WriteByte(c)
			continue
		}
		i++
		switch d[i] {
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case 't':
			buf.WriteByte('\t')
		case 'f':
			buf.WriteByte('\f')
		case 'v':
			buf.WriteByte('\v')
		case 'x':
			if i+3 <= len(d) {
				if v, err := strconv.ParseUint(string(d[i+1:i+3]), 16, 8); err == nil {
					buf.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			buf.WriteByte('x')
		default:
			buf.WriteByte(d[i])
		}
	}
	return buf.String()
}

// quotedLen returns the length in bytes of the string literal starting at
// d[0] == '"', including both quotes.
func quotedLen(d []byte) (int, error) {
	i := 1
	for i < len(d) {
		switch d[i] {
		case '"':
			return i + 1, nil
		case '\n':
			return 0, ErrUnterminated
		case '\\':
			if i+1 >= len(d) {
				return 0, ErrUnterminated
			}
			switch d[i+1] {
			case '\\', '"', '\'', 'n', 'r', 't', 'f', 'v':
				i += 2
			case 'x':
				if i+3 >= len(d) || !hexDigit(d[i+2]) || !hexDigit(d[i+3]) {
					return 0, ErrBadEscape
				}
				i += 4
			default:
				return 0, ErrBadEscape
			}
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

func hexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	default:
		return false
	}
}
