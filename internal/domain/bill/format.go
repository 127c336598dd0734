// Package bill reúne las reglas de presentación de las notas de gastos:
// formato de fecha legible, etiqueta de estado y orden cronológico inverso.
package bill

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/billed/internal/domain/entity"
)

// Abreviaturas cortas de mes en francés (formato corto de Intl "fr").
var frenchShortMonths = [...]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// ParseDate interpreta la fecha ISO de una nota. Acepta YYYY-MM-DD y RFC3339.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(entity.DateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q no interpretable: %w", raw, err)
	}
	return t, nil
}

// FormatDate convierte "2004-04-04" en "4 Avr. 04".
func FormatDate(raw string) (string, error) {
	t, err := ParseDate(raw)
	if err != nil {
		return "", err
	}
	// cases.Caser no es seguro entre goroutines: uno por llamada.
	month := []rune(cases.Title(language.French).String(frenchShortMonths[t.Month()-1]))
	if len(month) > 3 {
		month = month[:3]
	}
	year := fmt.Sprintf("%04d", t.Year())
	return fmt.Sprintf("%d %s. %s", t.Day(), string(month), year[2:4]), nil
}

// FormatStatus devuelve la etiqueta visible del estado.
// Un estado desconocido se devuelve sin cambios.
func FormatStatus(status string) string {
	switch status {
	case entity.BillStatusPending:
		return "En attente"
	case entity.BillStatusAccepted:
		return "Accepté"
	case entity.BillStatusRefused:
		return "Refused"
	default:
		return status
	}
}

// CompareDatesDesc ordena de la más reciente a la más antigua.
// Las fechas interpretables van antes que las no interpretables; estas
// últimas se comparan como texto, también en orden inverso.
func CompareDatesDesc(a, b string) int {
	ta, errA := ParseDate(a)
	tb, errB := ParseDate(b)
	switch {
	case errA == nil && errB == nil:
		return tb.Compare(ta)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(b, a)
	}
}
