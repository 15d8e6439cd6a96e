package parser

import (
	"testing"
	"time"
)

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"-R$ 10,00", -10.0},
		{"R$ -10,00", -10.0},
		{"89,90", 89.90},
		{"97,00", 97.00},
		{"1.000", 1000},
		{"-", 0},
		{"", 0},
		{"abc", 0},
	}
	for _, c := range cases {
		if got := ParseCurrency(c.in); got != c.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParsePercentage(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"12,5%", 12.5},
		{"100%", 100},
		{"-15,3%", -15.3},
		{"#DIV/0!", 0},
		{"-", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := ParsePercentage(c.in); got != c.want {
			t.Errorf("ParsePercentage(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDateBR(t *testing.T) {
	got := ParseDateBR("01/03/2024 10:00:00")
	want := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDateBR com hora = %v, want %v", got, want)
	}

	got = ParseDateBR("15/02/2024")
	want = time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDateBR sem hora = %v, want %v", got, want)
	}
}

func TestParseDateBRFallbackToNow(t *testing.T) {
	// Entrada vazia cai no sentinela "agora"; o contrato é não falhar.
	before := time.Now().UTC()
	got := ParseDateBR("")
	if got.Before(before) || time.Since(got) > time.Minute {
		t.Fatalf("sentinela fora da janela esperada: %v", got)
	}
}

func TestParseDateISO(t *testing.T) {
	got := ParseDateISO("2025-09-23")
	want := time.Date(2025, time.September, 23, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDateISO = %v, want %v", got, want)
	}
}

func TestParseLongDatePT(t *testing.T) {
	got := ParseLongDatePT("terça-feira, setembro 23, 2025")
	want := time.Date(2025, time.September, 23, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseLongDatePT = %v, want %v", got, want)
	}

	got = ParseLongDatePT("sexta-feira, janeiro 2, 2026")
	want = time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseLongDatePT = %v, want %v", got, want)
	}
}

func TestParseLongDatePTStructuralMismatch(t *testing.T) {
	// Mês desconhecido, partes faltando e dia não numérico devolvem o
	// sentinela em vez de derrubar o parse.
	for _, in := range []string{
		"terça-feira, frevereiro 23, 2025",
		"setembro 23",
		"terça-feira, setembro x, 2025",
		"terça-feira, setembro 23, dois mil",
	} {
		got := ParseLongDatePT(in)
		if time.Since(got) > time.Minute {
			t.Errorf("ParseLongDatePT(%q): esperado sentinela, veio %v", in, got)
		}
	}
}
