package cfgpath

import (
	"errors"
	"testing"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		in        string
		canonical string
	}{
		{"", ""},
		{"a", "a"},
		{"a.b", "a.b"},
		{"a.b.c", "a.b.c"},
		{"a[0]", "a[0]"},
		{"a.[0]", "a[0]"},
		{"a[0][1]", "a[0][1]"},
		{"a[0].b", "a[0].b"},
		{"[3]", "[3]"},
		{"a..b", "a.b"},
		{".b", "b"},
		{"a.", "a"},
		{"0", "0"},
		{"a.0.b", "a.0.b"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.String(); got != tc.canonical {
				t.Errorf("String() = %q, want %q", got, tc.canonical)
			}
		})
	}
}

func TestParseErr(t *testing.T) {
	for _, in := range []string{"a[", "a[x]", "a[1", "a[-1]", "a[0]b"} {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in); !errors.Is(err, ErrPath) {
				t.Errorf("Parse(%q) err = %v, want ErrPath", in, err)
			}
		})
	}
}

func TestNumericSegmentBothReadings(t *testing.T) {
	p, err := Parse("a.1")
	if err != nil {
		t.Fatal(err)
	}
	seg := p.Next
	if seg == nil || seg.Name == nil || *seg.Name != "1" {
		t.Fatalf("numeric segment name: %+v", seg)
	}
	if seg.Index == nil || *seg.Index != 1 {
		t.Fatalf("numeric segment index: %+v", seg)
	}
}

func TestBracketSegmentNoName(t *testing.T) {
	p, err := Parse("a[1]")
	if err != nil {
		t.Fatal(err)
	}
	seg := p.Next
	if seg == nil || seg.Name != nil || seg.Index == nil || *seg.Index != 1 {
		t.Fatalf("bracket segment: %+v", seg)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in, first, rest string
	}{
		{"", "", ""},
		{"a", "a", ""},
		{"a.b.c", "a", "b.c"},
		{"[0].b", "[0]", "b"},
		{"a[0]", "a", "[0]"},
	}
	for _, tc := range tests {
		first, rest, err := Split(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if first != tc.first || rest != tc.rest {
			t.Errorf("Split(%q) = %q, %q; want %q, %q",
				tc.in, first, rest, tc.first, tc.rest)
		}
	}
}
