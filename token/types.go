package token

import (
	"fmt"
)

type TokenType int

const (
	TName TokenType = iota
	TInteger
	TInt64
	TFloat
	TTrue
	TFalse
	TString
	TEquals
	TSemi
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TLParen
	TRParen
	TInclude
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TName:    "TName",
		TInteger: "TInteger",
		TInt64:   "TInt64",
		TFloat:   "TFloat",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TString:  "TString",
		TEquals:  "TEquals",
		TSemi:    "TSemi",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TInclude: "TInclude",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token's value: the unquoted content for TString,
// the raw bytes otherwise.
func (t *Token) String() string {
	if t.Type == TString {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}
