package goaffprodomain

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexNumber aceita valores monetários que a API do GoAffPro retorna ora como
// número, ora como string ("12.50"). Nulo e string vazia viram zero.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = 0
		return nil
	}

	raw = strings.Trim(raw, `"`)
	if raw == "" {
		*n = 0
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("valor numérico inválido: %q", raw)
	}

	*n = FlexNumber(value)
	return nil
}

func (n FlexNumber) Float64() float64 {
	return float64(n)
}
