package token

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

var includeWord = []byte("@include")

// Tokenize appends the tokens of src to dst. Comments (#, // and /* */)
// and whitespace produce no tokens.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := &PosDoc{d: src}
	var (
		i = 0
		n = len(src)
	)
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			doc.nl(i)
			i++
			continue
		case ' ', '\t', '\r':
			i++
			continue
		case '#':
			i += lineCommentLen(src[i:])
			continue
		case '/':
			cl, err := slashCommentLen(src[i:], doc, i)
			if err != nil {
				return nil, NewTokenizeErr(err, doc.Pos(i))
			}
			i += cl
			continue
		case '{':
			dst = append(dst, punct(TLCurl, doc, i))
			i++
			continue
		case '}':
			dst = append(dst, punct(TRCurl, doc, i))
			i++
			continue
		case '[':
			dst = append(dst, punct(TLSquare, doc, i))
			i++
			continue
		case ']':
			dst = append(dst, punct(TRSquare, doc, i))
			i++
			continue
		case '(':
			dst = append(dst, punct(TLParen, doc, i))
			i++
			continue
		case ')':
			dst = append(dst, punct(TRParen, doc, i))
			i++
			continue
		case ';':
			dst = append(dst, punct(TSemi, doc, i))
			i++
			continue
		case ',':
			dst = append(dst, punct(TComma, doc, i))
			i++
			continue
		case '=', ':':
			dst = append(dst, Token{Type: TEquals, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
			continue
		case '"':
			ql, err := quotedLen(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, doc.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Pos: doc.Pos(i), Bytes: src[i : i+ql]})
			i += ql
			continue
		case '@':
			if !bytes.HasPrefix(src[i:], includeWord) {
				return nil, NewTokenizeErr(ErrDirective, doc.Pos(i))
			}
			dst = append(dst, Token{Type: TInclude, Pos: doc.Pos(i), Bytes: src[i : i+len(includeWord)]})
			i += len(includeWord)
			continue
		}
		if asciiDigit(c) || c == '+' || c == '-' || c == '.' {
			nl, isFloat, isLong, err := number(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, doc.Pos(i))
			}
			tt := TInteger
			switch {
			case isFloat:
				tt = TFloat
			case isLong:
				tt = TInt64
			}
			dst = append(dst, Token{Type: tt, Pos: doc.Pos(i), Bytes: src[i : i+nl]})
			i += nl
			continue
		}
		if nameStart(rune(c)) || c >= utf8.RuneSelf {
			nl, err := nameLen(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, doc.Pos(i))
			}
			word := src[i : i+nl]
			tt := TName
			switch {
			case keywordEq(word, "true"):
				tt = TTrue
			case keywordEq(word, "false"):
				tt = TFalse
			}
			dst = append(dst, Token{Type: tt, Pos: doc.Pos(i), Bytes: word})
			i += nl
			continue
		}
		return nil, UnexpectedErr(string(src[i:i+1]), doc.Pos(i))
	}
	return dst, nil
}

func punct(tt TokenType, doc *PosDoc, i int) Token {
	return Token{Type: tt, Pos: doc.Pos(i), Bytes: doc.d[i : i+1]}
}

func lineCommentLen(d []byte) int {
	if i := bytes.IndexByte(d, '\n'); i >= 0 {
		return i
	}
	return len(d)
}

func slashCommentLen(d []byte, doc *PosDoc, off int) (int, error) {
	if len(d) < 2 {
		return 0, ErrComment
	}
	switch d[1] {
	case '/':
		return lineCommentLen(d), nil
	case '*':
		end := bytes.Index(d[2:], []byte("*/"))
		if end < 0 {
			return 0, ErrUnterminated
		}
		for j := 2; j < 2+end; j++ {
			if d[j] == '\n' {
				doc.nl(off + j)
			}
		}
		return end + 4, nil
	default:
		return 0, ErrComment
	}
}

func nameStart(r rune) bool {
	return r == '_' || r == '*' || unicode.IsLetter(r)
}

func nameRune(r rune) bool {
	return nameStart(r) || r == '-' || unicode.IsDigit(r)
}

func nameLen(d []byte) (int, error) {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return 0, ErrBadUTF8
		}
		if !nameRune(r) {
			break
		}
		i += sz
	}
	if i == 0 {
		return 0, ErrName
	}
	return i, nil
}

func keywordEq(d []byte, kw string) bool {
	if len(d) != len(kw) {
		return false
	}
	for i := range d {
		c := d[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != kw[i] {
			return false
		}
	}
	return true
}
