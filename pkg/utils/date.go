package utils

import (
	"errors"
	"fmt"
	"time"
)

// timestampLayouts cobre os formatos de data que a API do GoAffPro retorna.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp tenta interpretar um timestamp em um dos layouts conhecidos.
func ParseTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, errors.New("timestamp vazio")
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}

	return nil, fmt.Errorf("timestamp em formato desconhecido: %q", value)
}

// FormatDate formata no padrão date-only usado nas respostas e na planilha.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
