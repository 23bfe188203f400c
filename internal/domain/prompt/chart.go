package prompt

import (
	"fmt"
	"strings"

	reading "github.com/veda-labs/jyotish/internal/domain/reading"
)

// writeChartBlock appends one partner's formatted birth data. The label keeps
// the two blocks distinguishable in dual-chart prompts.
func writeChartBlock(b *strings.Builder, label string, d *reading.BirthDetails) {
	if d == nil {
		return
	}
	fmt.Fprintf(b, "\nBirth Details (%s):\n", label)
	if strings.TrimSpace(d.Name) != "" {
		fmt.Fprintf(b, "- Name: %s\n", d.Name)
	}
	fmt.Fprintf(b, "- Date of Birth: %s\n", d.DOB)
	fmt.Fprintf(b, "- Time of Birth: %s\n", d.TOB)
	fmt.Fprintf(b, "- City of Birth: %s\n", d.City)
}

// writeCharts appends partner 1 and, when present, partner 2.
func writeCharts(b *strings.Builder, req reading.Request) {
	writeChartBlock(b, "Partner 1", req.BirthDetailsPartner1)
	writeChartBlock(b, "Partner 2", req.BirthDetailsPartner2)
}

// writeUserQuery appends the caller's free-text question when one was given.
func writeUserQuery(b *strings.Builder, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	fmt.Fprintf(b, "\nThe user specifically asks: %q\n", query)
}
