package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBRL formata um valor monetário no padrão brasileiro: R$ 1.234,56
func FormatBRL(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	formatted := strconv.FormatFloat(RoundWithTwoDecimalPlace(value), 'f', 2, 64)

	intPart := formatted[:len(formatted)-3]
	decPart := formatted[len(formatted)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	result := "R$ " + strings.Join(groups, ".") + "," + decPart
	if negative {
		result = "-" + result
	}

	return result
}
