// Package printers renders planner state for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyplan/pkg/dashboard"
	"tableflip.dev/studyplan/pkg/goal"
	"tableflip.dev/studyplan/pkg/task"
	"tableflip.dev/studyplan/pkg/timestamp"
)

const layoutDate = "Jan 2, 2006"

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Tasks renders a task list, one row per task.
func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	now := time.Now()
	tbl := uitable.New()
	tbl.Separator = "  "

	for _, t := range tasks {
		row := []interface{}{statusGlyph(t), t.Title, priorityBadge(t.Priority), dueLabel(t, now), t.Subject}
		if pp.ShowID {
			row = append([]interface{}{faint(t.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Goals renders a goal list with progress bars.
func (pp *PrettyPrint) Goals(goals ...*goal.Goal) {
	if len(goals) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, g := range goals {
		target := "no target date"
		if g.TargetDate != nil {
			target = fmt.Sprintf("Target: %s", g.TargetDate.Local().Format(layoutDate))
		}
		row := []interface{}{ProgressBar(g.Progress), g.Title, faint(target), g.Subject}
		if pp.ShowID {
			row = append([]interface{}{faint(g.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Summary renders the dashboard counters.
func (pp *PrettyPrint) Summary(s dashboard.Summary) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Today's Tasks"), s.TodayTasks)
	tbl.AddRow(bold.Sprint("Completed Goals"), s.CompletedGoals)
	tbl.AddRow(bold.Sprint("Study Streak"), fmt.Sprintf("%d days", s.StudyStreak))
	tbl.AddRow(bold.Sprint("Upcoming Deadlines"), s.UpcomingDeadlines)
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Activity renders the recent-activity feed with relative ages.
func (pp *PrettyPrint) Activity(feed []dashboard.Activity, now time.Time) {
	if len(feed) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no recent activity\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, a := range feed {
		tbl.AddRow(activityGlyph(a.Kind), a.Text, faint(timestamp.Relative(a.Time.Time, now)))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func statusGlyph(t *task.Task) string {
	if t.Completed {
		return color.New(color.FgGreen).Sprint("✘")
	}
	if t.Overdue(time.Now()) {
		return color.New(color.FgRed).Sprint("●")
	}
	return "●"
}

func priorityBadge(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return color.New(color.FgRed).Sprint(p)
	case task.PriorityMedium:
		return color.New(color.FgYellow).Sprint(p)
	default:
		return faint(p.String())
	}
}

func dueLabel(t *task.Task, now time.Time) string {
	if t.DueDate == nil {
		return ""
	}
	label := t.DueDate.Local().Format(layoutDate)
	if t.DueDate.SameDay(now) {
		label += " (Today)"
	}
	return faint(label)
}

func activityGlyph(k dashboard.Kind) string {
	if k == dashboard.KindGoal {
		return color.New(color.FgYellow).Sprint("★")
	}
	return color.New(color.FgGreen).Sprint("✘")
}

// ProgressBar renders a ten-segment bar for a 0-100 progress value.
func ProgressBar(progress int) string {
	filled := progress / 10
	bar := strings.Repeat("█", filled) + strings.Repeat("─", 10-filled)
	return fmt.Sprintf("[%s] %3d%%", bar, progress)
}

func faint(s string) string {
	return color.New(color.Faint).Sprint(s)
}
