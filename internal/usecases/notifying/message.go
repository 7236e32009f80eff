package notifying

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sectorres/vendas-insights-wa/internal/domain"
	"github.com/sectorres/vendas-insights-wa/pkg/utils"
)

// FormatReportMessage monta o texto enviado por WhatsApp. A formatação usa a
// sintaxe de negrito do WhatsApp (*texto*) e valores em moeda pt-BR.
func FormatReportMessage(scheduleName string, result *domain.AggregateResult, referenceDay string) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("📊 *Relatório: %s*\n\n", scheduleName))

	if result.Kind == domain.ReportKindDailySales && referenceDay != "" {
		builder.WriteString(fmt.Sprintf("📅 *%s* (%s)\n\n", result.Kind.Label(), referenceDay))
	} else {
		builder.WriteString(fmt.Sprintf("📅 *%s*\n\n", result.Kind.Label()))
	}

	for _, storeLabel := range sortedKeys(result.Data) {
		builder.WriteString(fmt.Sprintf("🏪 *%s*\n", storeLabel))

		buckets := result.Data[storeLabel]
		if result.Kind == domain.ReportKindSalesByType {
			// Uma linha por tipo de produto
			for _, bucket := range sortedBuckets(buckets) {
				builder.WriteString(fmt.Sprintf("  📦 %s: %s\n", bucket, utils.FormatBRL(buckets[bucket])))
			}
		} else {
			var storeTotal float64
			for _, value := range buckets {
				storeTotal += value
			}
			builder.WriteString(fmt.Sprintf("💰 Total: %s\n", utils.FormatBRL(storeTotal)))
		}

		builder.WriteString("\n")
	}

	builder.WriteString(fmt.Sprintf("💰 *Total Geral: %s*", utils.FormatBRL(result.Total)))

	return builder.String()
}

func sortedKeys(data map[string]map[string]float64) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedBuckets(buckets map[string]float64) []string {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
