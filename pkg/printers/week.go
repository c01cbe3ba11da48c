package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyplan/pkg/timeline"
)

// Week renders the seven-day timeline, one row per day.
func (pp *PrettyPrint) Week(days [7]timeline.Day, now time.Time) {
	start := days[0].Date
	end := days[6].Date
	pp.Title(fmt.Sprintf("%s - %s", start.Format(layoutDate), end.Format(layoutDate)))

	bold := color.New(color.Bold)
	today := color.New(color.Bold, color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60

	for _, day := range days {
		header := fmt.Sprintf("%s %d", day.Date.Format("Mon"), day.Date.Day())
		styled := bold.Sprint(header)
		if sameDay(day.Date, now) {
			styled = today.Sprint(header)
		}

		if len(day.Tasks) == 0 {
			tbl.AddRow(styled, faint("-"))
			continue
		}
		for i, t := range day.Tasks {
			label := t.Title
			if t.Completed {
				label = faint(label)
			}
			if i == 0 {
				tbl.AddRow(styled, label)
			} else {
				tbl.AddRow("", label)
			}
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
