package token

import "testing"

func TestQuoteRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"with \"quotes\"",
		"tab\tand\nnewline",
		"back\\slash",
		"control \x01 byte",
		"unicode é ☃",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			q := Quote(s)
			if n, err := quotedLen([]byte(q)); err != nil || n != len(q) {
				t.Fatalf("quotedLen(%q) = %d, %v", q, n, err)
			}
			if got := QuotedToString([]byte(q)); got != s {
				t.Errorf("round trip %q -> %q -> %q", s, q, got)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a", `"a"`},
		{"a\nb", `"a\nb"`},
		{`a"b`, `"a\"b"`},
		{"\x02", `"\x02"`},
	}
	for _, tc := range tests {
		if got := Quote(tc.in); got != tc.want {
			t.Errorf("Quote(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
