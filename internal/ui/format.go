package ui

import "github.com/DannerDQ/task-tracker/internal/task"

// displayLayout is how task cards show timestamps: full weekday and month
// with a 12-hour clock, single locale.
const displayLayout = "Monday, 02 January 2006 - 03:04:05 PM"

func formatDateTime(lt task.LocalTime) string {
	return lt.Format(displayLayout)
}
