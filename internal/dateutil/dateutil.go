// Package dateutil concentra o tratamento de datas de calendário do
// sistema de locação. Datas são valores "somente data" ancorados em
// meia-noite UTC; toda a aritmética de períodos parte daqui.
package dateutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Layouts de apresentação: entrada sempre em dd/mm/aaaa, saída ISO
// apenas onde o contrato da API pede.
const (
	LayoutBR  = "02/01/2006"
	LayoutISO = "2006-01-02"
)

const hoursPerDay = 24

// Parse converte uma data em formato dd/mm/aaaa para meia-noite UTC.
// Componentes ausentes, não numéricos ou zero são rejeitados.
func Parse(s string) (time.Time, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: expected dd/mm/yyyy", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil || day == 0 {
		return time.Time{}, fmt.Errorf("invalid day in date %q", s)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month == 0 {
		return time.Time{}, fmt.Errorf("invalid month in date %q", s)
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil || year == 0 {
		return time.Time{}, fmt.Errorf("invalid year in date %q", s)
	}

	t, err := time.Parse(LayoutBR, fmt.Sprintf("%02d/%02d/%04d", day, month, year))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return t.UTC(), nil
}

// DaysBetween retorna a quantidade de dias inteiros entre start e end,
// arredondada. Pode ser negativa quando end < start; a validação de
// ordem é responsabilidade do chamador.
func DaysBetween(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	return int(math.Round(hours / hoursPerDay))
}

// Format apresenta a data no formato dd/mm/aaaa
func Format(t time.Time) string {
	return t.Format(LayoutBR)
}

// FormatISO apresenta a data no formato aaaa-mm-dd
func FormatISO(t time.Time) string {
	return t.Format(LayoutISO)
}
