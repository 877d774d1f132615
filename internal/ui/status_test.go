package ui

import "testing"

func TestStatusLine(t *testing.T) {
	cases := []struct {
		gen, pop, count int
		auto            bool
		want            string
	}{
		{0, 9, 1, false, "gen 0  pop 9  seed 1  [manual]"},
		{12, 240, 100, true, "gen 12  pop 240  seed 100  [auto]"},
	}
	for _, tc := range cases {
		if got := StatusLine(tc.gen, tc.pop, tc.count, tc.auto); got != tc.want {
			t.Fatalf("StatusLine = %q, want %q", got, tc.want)
		}
	}
}
