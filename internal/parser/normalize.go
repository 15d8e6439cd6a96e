package parser

import (
	"strconv"
	"strings"
	"time"
)

// ParseCurrency converte valores no formato pt-BR ("R$ 1.234,56") em float64.
// O sinal negativo pode aparecer antes ou depois do "R$". Valor vazio ou "-"
// vira 0, assim como qualquer coisa que não parseia.
func ParseCurrency(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	clean := strings.ReplaceAll(s, "R$", "")
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.Replace(clean, ",", ".", 1)

	neg := strings.Contains(clean, "-")
	clean = strings.ReplaceAll(clean, "-", "")

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	if neg {
		return -v
	}
	return v
}

// ParsePercentage converte "12,5%" em 12.5. O token de divisão por zero do
// Sheets ("#DIV/0!") e o traço viram 0.
func ParsePercentage(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || s == "#DIV/0!" {
		return 0
	}
	clean := strings.ReplaceAll(s, "%", "")
	clean = strings.Replace(clean, ",", ".", 1)
	v, err := strconv.ParseFloat(strings.TrimSpace(clean), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseNumber é o conversor tolerante usado nos campos numéricos do Meta Ads
// (decimal com ponto; vírgula decimal também é aceita).
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v
	}
	v, err = strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseCount converte contagens inteiras (alcance, impressões, cliques).
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return int(v)
	}
	return 0
}

// ParseDateBR aceita "DD/MM/YYYY" com " HH:MM:SS" opcional. Sem o padrão de
// barras, tenta formatos nativos; em último caso devolve o agora em UTC, o
// sentinela de data inválida que o restante do pipeline tolera.
func ParseDateBR(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().UTC()
	}

	parts := strings.SplitN(s, " ", 2)
	dp := strings.Split(parts[0], "/")
	if len(dp) == 3 {
		day, errD := strconv.Atoi(dp[0])
		month, errM := strconv.Atoi(dp[1])
		year, errY := strconv.Atoi(dp[2])
		if errD == nil && errM == nil && errY == nil {
			h, mi, sec := 0, 0, 0
			if len(parts) == 2 {
				tp := strings.Split(parts[1], ":")
				if len(tp) > 0 {
					h, _ = strconv.Atoi(tp[0])
				}
				if len(tp) > 1 {
					mi, _ = strconv.Atoi(tp[1])
				}
				if len(tp) > 2 {
					sec, _ = strconv.Atoi(tp[2])
				}
			}
			return time.Date(year, time.Month(month), day, h, mi, sec, 0, time.UTC)
		}
	}

	return parseFallback(s)
}

// ParseDateISO aceita "YYYY-MM-DD" (campo Dia dos relatórios do Meta Ads).
func ParseDateISO(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().UTC()
	}
	dp := strings.Split(s, "-")
	if len(dp) == 3 {
		year, errY := strconv.Atoi(dp[0])
		month, errM := strconv.Atoi(dp[1])
		day, errD := strconv.Atoi(dp[2])
		if errY == nil && errM == nil && errD == nil {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		}
	}
	return parseFallback(s)
}

// mesesPT resolve nomes de mês do formato longo do Sheets em pt-BR.
var mesesPT = map[string]time.Month{
	"janeiro":   time.January,
	"fevereiro": time.February,
	"março":     time.March,
	"abril":     time.April,
	"maio":      time.May,
	"junho":     time.June,
	"julho":     time.July,
	"agosto":    time.August,
	"setembro":  time.September,
	"outubro":   time.October,
	"novembro":  time.November,
	"dezembro":  time.December,
}

// ParseLongDatePT aceita o formato longo da planilha de parceria:
// "terça-feira, setembro 23, 2025". Qualquer desvio estrutural devolve o
// sentinela "agora" em vez de derrubar o parse inteiro.
func ParseLongDatePT(s string) time.Time {
	parts := strings.Split(s, ",")
	if len(parts) < 3 {
		return time.Now().UTC()
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	mid := strings.Fields(parts[1])
	if len(mid) < 2 {
		return time.Now().UTC()
	}

	month, ok := mesesPT[strings.ToLower(mid[0])]
	if !ok {
		return time.Now().UTC()
	}
	day, errD := strconv.Atoi(mid[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errY != nil {
		return time.Now().UTC()
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func parseFallback(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}
