package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AllowedHours returns the distinct 12-hour labels ("01".."12") whose 24-hour
// hour falls in [start hour, end hour], both ends inclusive. A window whose
// start hour is later than its end hour wraps past midnight.
//
// Labels are sorted by numeric value, not by clock order: a 09:00-17:00 window
// yields 01..05, 09, 10, 11, 12.
//
// Without a window (or with an unparseable one) all twelve hours are allowed.
func AllowedHours(startTime, endTime string) []string {
	startHour, _, errStart := ParseTime24(startTime)
	endHour, _, errEnd := ParseTime24(endTime)
	if errStart != nil || errEnd != nil {
		return allHours()
	}

	seen := make(map[int]struct{}, 12)
	labels := make([]int, 0, 12)
	for _, h := range windowHours(startHour, endHour) {
		label := to12Hour(h)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	sort.Ints(labels)

	result := make([]string, len(labels))
	for i, label := range labels {
		result[i] = fmt.Sprintf("%02d", label)
	}
	return result
}

// AllowedMinutes returns the selectable minutes for the chosen hour and period.
//
//   - start hour and end hour both selected: [start minute, end minute]
//   - start hour: [start minute, 59]
//   - end hour: [0, end minute]
//   - hour strictly inside the window: all 60 minutes
//   - hour outside the window: empty list
//
// Without a window, hour or period every minute is allowed.
func AllowedMinutes(startTime, endTime, hour12 string, period Period) []string {
	if isPlaceholder(hour12) || !period.IsValid() {
		return allMinutes()
	}

	startHour, startMinute, errStart := ParseTime24(startTime)
	endHour, endMinute, errEnd := ParseTime24(endTime)
	if errStart != nil || errEnd != nil {
		return allMinutes()
	}

	label, err := strconv.Atoi(strings.TrimSpace(hour12))
	if err != nil || !containsLabel(AllowedHours(startTime, endTime), label) {
		return []string{}
	}

	selected := to24Hour(label, period)
	isStart := selected == startHour
	isEnd := selected == endHour

	switch {
	case isStart && isEnd:
		return minuteRange(startMinute, endMinute)
	case isStart:
		return minuteRange(startMinute, 59)
	case isEnd:
		return minuteRange(0, endMinute)
	case insideWindow(selected, startHour, endHour):
		return allMinutes()
	default:
		return []string{}
	}
}

// DeterminePeriod infers AM or PM for a bare hour label so that the hour lands
// inside the window. Falls back to the candidate closest to the start hour
// (ties go to AM) for a normal window, and to PM for a midnight-spanning one.
func DeterminePeriod(hour12, startTime, endTime string) Period {
	startHour, _, errStart := ParseTime24(startTime)
	endHour, _, errEnd := ParseTime24(endTime)
	if errStart != nil || errEnd != nil {
		return DefaultPeriod
	}

	label, err := strconv.Atoi(strings.TrimSpace(hour12))
	if err != nil || label < 1 || label > 12 {
		return DefaultPeriod
	}

	amHour := to24Hour(label, AM)
	pmHour := to24Hour(label, PM)

	if startHour > endHour {
		switch {
		case amHour <= endHour:
			return AM
		case pmHour >= startHour:
			return PM
		default:
			return DefaultPeriod
		}
	}

	switch {
	case amHour >= startHour && amHour <= endHour:
		return AM
	case pmHour >= startHour && pmHour <= endHour:
		return PM
	case abs(amHour-startHour) <= abs(pmHour-startHour):
		return AM
	default:
		return PM
	}
}

// windowHours перечисляет часы окна в 24-часовом формате с учётом перехода через полночь
func windowHours(startHour, endHour int) []int {
	hours := make([]int, 0, 24)
	if startHour > endHour {
		for h := startHour; h <= 23; h++ {
			hours = append(hours, h)
		}
		for h := 0; h <= endHour; h++ {
			hours = append(hours, h)
		}
		return hours
	}
	for h := startHour; h <= endHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// insideWindow: час строго внутри окна (без граничных часов)
func insideWindow(hour, startHour, endHour int) bool {
	if startHour > endHour {
		return hour > startHour || hour < endHour
	}
	return hour > startHour && hour < endHour
}

func containsLabel(labels []string, label int) bool {
	want := fmt.Sprintf("%02d", label)
	for _, l := range labels {
		if l == want {
			return true
		}
	}
	return false
}

func isPlaceholder(hour12 string) bool {
	h := strings.TrimSpace(hour12)
	return h == "" || h == HourPlaceholder
}

func allHours() []string {
	hours := make([]string, 12)
	for i := range hours {
		hours[i] = fmt.Sprintf("%02d", i+1)
	}
	return hours
}

func allMinutes() []string {
	return minuteRange(0, 59)
}

// minuteRange при from > to возвращает пустой список
func minuteRange(from, to int) []string {
	if from > to {
		return []string{}
	}
	minutes := make([]string, 0, to-from+1)
	for m := from; m <= to; m++ {
		minutes = append(minutes, fmt.Sprintf("%02d", m))
	}
	return minutes
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
