package reporting

import "fmt"

// mergeRowsByID atualiza linhas existentes pela coluna de ID e anexa as
// novas, preservando a ordem da planilha. A primeira linha existente é
// tratada como cabeçalho e fica de fora do resultado.
func mergeRowsByID(existing [][]any, rows [][]any) [][]any {
	merged := make([][]any, 0, len(existing)+len(rows))
	index := make(map[string]int)

	if len(existing) > 1 {
		for _, row := range existing[1:] {
			if len(row) == 0 {
				continue
			}

			index[rowKey(row)] = len(merged)
			merged = append(merged, row)
		}
	}

	for _, row := range rows {
		key := rowKey(row)
		if position, ok := index[key]; ok {
			merged[position] = row
			continue
		}

		index[key] = len(merged)
		merged = append(merged, row)
	}

	return merged
}

// rowKey normaliza a coluna de ID: valores lidos da planilha voltam como
// string, os recém-montados são numéricos.
func rowKey(row []any) string {
	return fmt.Sprint(row[0])
}
