package money

import (
	"fmt"
	"strings"
)

// FormatBRL formata um valor em reais no padrão pt-BR: "R$1.234,56".
// Valores negativos saem como "-R$...".
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	cents := int64(v*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := fmt.Sprintf("R$%s,%02d", b.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}
