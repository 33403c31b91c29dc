package utils

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/elC0mpa/aws-reservations/model"
)

// DrawReservationTable renders one published report as a rounded table, one
// row per (zone, os, instanceType) bucket.
func DrawReservationTable(report model.ReservationReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📋  RESERVATION REPORT"))
	fmt.Printf(" Window: %s -> %s\n",
		text.FgBlue.Sprint(report.Start.Format("2006-01-02 15:04:05 MST")),
		text.FgBlue.Sprint(report.End.Format("2006-01-02 15:04:05 MST")))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	rowHeader := table.Row{
		"Availability Zone",
		"OS",
		"Instance Type",
		"Reserved",
		"Used",
		"Surplus",
	}

	tw := table.Table{}
	tw.AppendHeader(rowHeader)

	var totalReserved, totalUsed int
	for _, detail := range report.Reservations {
		tw.AppendRow(table.Row{
			detail.AvailabilityZone,
			string(detail.Os),
			detail.InstanceType,
			detail.Reserved,
			detail.Used,
			formatSurplus(detail.Reserved - detail.Used),
		})

		totalReserved += detail.Reserved
		totalUsed += detail.Used
	}

	tw.AppendFooter(table.Row{
		"TOTAL",
		"",
		"",
		totalReserved,
		totalUsed,
		formatSurplus(totalReserved - totalUsed),
	})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{
			Number:       1,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number:       2,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number: 4,
			Align:  text.AlignRight,
		},
		{
			Number: 5,
			Align:  text.AlignRight,
		},
		{
			Number:       6,
			Align:        text.AlignRight,
			VAlignHeader: text.VAlignMiddle,
		},
	})

	fmt.Println(tw.Render())
}

// formatSurplus colors reserved-minus-used: red means more instances running
// than purchased, green means spare purchased capacity.
func formatSurplus(surplus int) string {
	if surplus < 0 {
		return text.FgHiRed.Sprintf("%d", surplus)
	}
	if surplus > 0 {
		return text.FgHiGreen.Sprintf("+%d", surplus)
	}
	return "0"
}
