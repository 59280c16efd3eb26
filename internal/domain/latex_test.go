package domain

import "testing"

func TestLatexToUnicode(t *testing.T) {
	cases := map[string]string{
		"plain":                            "plain",
		"#sigma":                           "σ",
		"#Delta#phi":                       "Δφ",
		"p_{T} [GeV]":                      "pT [GeV]",
		"  [fit mean 1.0 - #sigma 2.0 ns]": "  [fit mean 1.0 - σ 2.0 ns]",
		"#eta #pm 0.1":                     "η ± 0.1",
	}
	for in, want := range cases {
		if got := LatexToUnicode(in); got != want {
			t.Errorf("LatexToUnicode(%q) = %q, want %q", in, got, want)
		}
	}
}
