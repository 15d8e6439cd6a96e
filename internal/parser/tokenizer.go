package parser

import "strings"

// SplitLine separa uma linha pelo delimitador, ignorando delimitadores dentro
// de trechos entre aspas duplas. As aspas são consumidas (não há suporte a
// aspas escapadas "" dentro de campo) e cada célula sai com trim.
func SplitLine(line string, delim rune) []string {
	var (
		out      []string
		cur      strings.Builder
		inQuotes bool
	)
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == delim && !inQuotes:
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	out = append(out, strings.TrimSpace(cur.String()))
	return out
}

// TextRows tokeniza um CSV inteiro em linhas de células, pulando linhas em
// branco. A primeira linha retornada é o cabeçalho.
func TextRows(text string) [][]string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, SplitLine(line, ','))
	}
	return rows
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
