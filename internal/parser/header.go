package parser

import "strings"

// rowMapper resolve campos lógicos contra o cabeçalho real do arquivo. Cada
// campo tem uma lista ordenada de grafias aceitas (com/sem acento,
// maiúscula/minúscula); vence a primeira grafia presente com valor não vazio.
type rowMapper struct {
	idx map[string]int
}

func newRowMapper(headers []string) *rowMapper {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return &rowMapper{idx: idx}
}

// field devolve o valor da primeira grafia que existe no cabeçalho e tem
// célula preenchida na linha. Sem correspondência, devolve "".
func (m *rowMapper) field(cells []string, names ...string) string {
	for _, n := range names {
		i, ok := m.idx[n]
		if !ok || i >= len(cells) {
			continue
		}
		if v := cells[i]; v != "" {
			return v
		}
	}
	return ""
}
