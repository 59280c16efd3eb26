package domain

import (
	"sort"
	"strings"
)

var latexSymbols = map[string]string{
	"#alpha": "α", "#beta": "β", "#gamma": "γ", "#delta": "δ",
	"#epsilon": "ε", "#eta": "η", "#theta": "θ", "#lambda": "λ",
	"#mu": "μ", "#nu": "ν", "#pi": "π", "#rho": "ρ", "#sigma": "σ",
	"#tau": "τ", "#phi": "φ", "#chi": "χ", "#psi": "ψ", "#omega": "ω",
	"#Delta": "Δ", "#Gamma": "Γ", "#Lambda": "Λ", "#Phi": "Φ",
	"#Sigma": "Σ", "#Omega": "Ω", "#Upsilon": "Υ",
	"#pm": "±", "#mp": "∓", "#times": "×", "#cdot": "·", "#infty": "∞",
	"#sqrt": "√", "#leq": "≤", "#geq": "≥", "#neq": "≠", "#approx": "≈",
	"#rightarrow": "→", "#leftarrow": "←", "#circ": "°", "#ell": "ℓ",
}

var latexKeys = func() []string {
	keys := make([]string, 0, len(latexSymbols))
	for k := range latexSymbols {
		keys = append(keys, k)
	}
	// longest first so a short token never shadows a longer one
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// LatexToUnicode turns ROOT TLatex tokens into Unicode text. Sub and
// superscript braces are flattened: "p_{T}" becomes "pT".
func LatexToUnicode(s string) string {
	if !strings.ContainsAny(s, "#_^") {
		return s
	}
	for _, k := range latexKeys {
		s = strings.ReplaceAll(s, k, latexSymbols[k])
	}
	r := strings.NewReplacer("_{", "", "^{", "", "}", "", "#{", "", "#bf{", "", "#it{", "")
	return r.Replace(s)
}
