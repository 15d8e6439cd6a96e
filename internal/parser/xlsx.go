package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxMagic é o prefixo zip de um arquivo .xlsx.
var xlsxMagic = []byte{'P', 'K', 0x03, 0x04}

// IsXLSX diz se o payload parece um workbook .xlsx em vez de texto CSV.
func IsXLSX(data []byte) bool {
	if len(data) < len(xlsxMagic) {
		return false
	}
	for i, b := range xlsxMagic {
		if data[i] != b {
			return false
		}
	}
	return true
}

// RowsFromXLSX extrai a primeira aba de um workbook como linhas de células,
// no mesmo formato que o tokenizador produz para CSV.
func RowsFromXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir planilha: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("planilha sem abas")
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ler aba %q: %w", sheets[0], err)
	}

	rows := make([][]string, 0, len(raw))
	for _, cells := range raw {
		trimmed := make([]string, len(cells))
		for i, c := range cells {
			trimmed[i] = strings.TrimSpace(c)
		}
		if blankRow(trimmed) {
			continue
		}
		rows = append(rows, trimmed)
	}
	return rows, nil
}
