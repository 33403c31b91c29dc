package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/elC0mpa/aws-reservations/model"
)

const (
	ColorOverUtilized  = "#d73027"
	ColorHighUtilized  = "#f46d43"
	ColorWellUtilized  = "#1a9850"
	ColorUnderUtilized = "#fee08b"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawUtilizationChart renders per-instance-type utilization (used as a
// percentage of reserved) for every type with purchased capacity.
func DrawUtilizationChart(report model.ReservationReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📈  RESERVATION UTILIZATION"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	type typeTotals struct {
		reserved int
		used     int
	}

	totals := make(map[string]typeTotals)
	for _, detail := range report.Reservations {
		current := totals[detail.InstanceType]
		current.reserved += detail.Reserved
		current.used += detail.Used
		totals[detail.InstanceType] = current
	}

	instanceTypes := make([]string, 0, len(totals))
	for instanceType, total := range totals {
		if total.reserved > 0 {
			instanceTypes = append(instanceTypes, instanceType)
		}
	}
	sort.Strings(instanceTypes)

	if len(instanceTypes) == 0 {
		fmt.Println(" No reserved capacity to chart")
		return
	}

	bc := barchart.New(100, 20)

	for _, instanceType := range instanceTypes {
		total := totals[instanceType]
		percent := 100 * float64(total.used) / float64(total.reserved)

		data := barchart.BarData{
			Label: fmt.Sprintf("%s: %d/%d", instanceType, total.used, total.reserved),
			Values: []barchart.BarValue{
				{
					Value: percent,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(utilizationColor(percent))),
				},
			},
		}

		bc.Push(data)
	}

	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func utilizationColor(percent float64) string {
	switch {
	case percent > 100:
		return ColorOverUtilized
	case percent >= 80:
		return ColorWellUtilized
	case percent >= 50:
		return ColorHighUtilized
	default:
		return ColorUnderUtilized
	}
}
