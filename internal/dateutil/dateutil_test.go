package dateutil

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Run("converte dd/mm/aaaa para meia-noite UTC", func(t *testing.T) {
		got, err := Parse("01/01/2023")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		want := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("esperava %v, obteve %v", want, got)
		}

		if got.Location() != time.UTC {
			t.Errorf("esperava UTC, obteve %v", got.Location())
		}
	})

	t.Run("aceita dia e mês sem zero à esquerda", func(t *testing.T) {
		got, err := Parse("5/3/2023")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		want := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("esperava %v, obteve %v", want, got)
		}
	})

	t.Run("rejeita componentes inválidos", func(t *testing.T) {
		invalid := []string{
			"",
			"01/01",
			"01-01-2023",
			"aa/01/2023",
			"01/bb/2023",
			"01/01/cc",
			"0/01/2023",
			"01/0/2023",
			"01/01/0",
			"32/01/2023",
			"01/13/2023",
		}

		for _, s := range invalid {
			if _, err := Parse(s); err == nil {
				t.Errorf("esperava erro para %q, obteve sucesso", s)
			}
		}
	})
}

func TestDaysBetween(t *testing.T) {
	t.Run("calcula a diferença em dias inteiros", func(t *testing.T) {
		start, _ := Parse("01/01/2023")
		end, _ := Parse("10/01/2023")

		if got := DaysBetween(start, end); got != 9 {
			t.Errorf("esperava 9 dias, obteve %d", got)
		}
	})

	t.Run("é zero para a mesma data", func(t *testing.T) {
		d, _ := Parse("15/06/2023")

		if got := DaysBetween(d, d); got != 0 {
			t.Errorf("esperava 0 dias, obteve %d", got)
		}
	})

	t.Run("é negativa quando end antecede start", func(t *testing.T) {
		start, _ := Parse("10/01/2023")
		end, _ := Parse("01/01/2023")

		if got := DaysBetween(start, end); got != -9 {
			t.Errorf("esperava -9 dias, obteve %d", got)
		}
	})

	t.Run("atravessa viradas de mês e ano", func(t *testing.T) {
		start, _ := Parse("28/12/2022")
		end, _ := Parse("03/01/2023")

		if got := DaysBetween(start, end); got != 6 {
			t.Errorf("esperava 6 dias, obteve %d", got)
		}
	})
}

func TestFormat(t *testing.T) {
	d := time.Date(2023, time.July, 9, 0, 0, 0, 0, time.UTC)

	if got := Format(d); got != "09/07/2023" {
		t.Errorf("esperava 09/07/2023, obteve %s", got)
	}

	if got := FormatISO(d); got != "2023-07-09" {
		t.Errorf("esperava 2023-07-09, obteve %s", got)
	}
}
