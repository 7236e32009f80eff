package utils

import (
	"fmt"
	"strconv"
	"strings"
)

const compactDateLength = 8

// ToCompactDate converte uma data no formato DD/MM/YYYY (com componente de
// hora opcional, ex: "15/03/2024 10:00:00") para o formato compacto YYYYMMDD
// usado nas comparações de período. Retorna string vazia quando a data não
// pode ser interpretada — o registro simplesmente não casa com nenhum período.
func ToCompactDate(dateStr string) string {
	fields := strings.Fields(dateStr)
	if len(fields) == 0 {
		return ""
	}

	parts := strings.Split(fields[0], "/")
	if len(parts) != 3 {
		return ""
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return ""
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return ""
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%04d%02d%02d", year, month, day)
}

// ToSlashedDate converte uma data compacta YYYYMMDD para o formato YYYY/MM/DD
// esperado pela API do ERP. Entradas com tamanho diferente de 8 são devolvidas
// sem alteração (passthrough mantido por compatibilidade).
func ToSlashedDate(compact string) string {
	if len(compact) != compactDateLength {
		return compact
	}

	return compact[0:4] + "/" + compact[4:6] + "/" + compact[6:8]
}

// ToBRDate converte uma data compacta YYYYMMDD para DD/MM/YYYY, o formato que
// aparece nos registros de venda. Mesma política de passthrough do ToSlashedDate.
func ToBRDate(compact string) string {
	if len(compact) != compactDateLength {
		return compact
	}

	return compact[6:8] + "/" + compact[4:6] + "/" + compact[0:4]
}

// DateOnly retorna a porção de data de uma string DD/MM/YYYY[ HH:MM:SS],
// descartando o componente de hora quando presente.
func DateOnly(dateStr string) string {
	fields := strings.Fields(dateStr)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// InCompactWindow verifica se uma data compacta pertence ao período inclusivo
// [start, end]. A comparação lexicográfica é válida porque o formato YYYYMMDD
// tem largura fixa com zeros à esquerda.
func InCompactWindow(date, start, end string) bool {
	if date == "" {
		return false
	}

	return date >= start && date <= end
}
