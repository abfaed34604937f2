// Package token provides tokenization support for the cfg format.
//
// [Tokenize] turns document bytes into a flat token sequence. Comments and
// whitespace are consumed by the tokenizer and produce no tokens. Every
// token carries a [Pos] pointing back into the source document for error
// reporting.
package token
