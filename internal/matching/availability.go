package matching

import (
	"sort"
	"time"

	"volunteer-matching-engine/internal/models"
)

const (
	// noAvailabilityScore is the low default for volunteers with no recorded
	// availability at all.
	noAvailabilityScore = 30.0

	// weekendPenaltyFactor is applied when a weekdays-only volunteer is
	// matched against a Saturday or Sunday event.
	weekendPenaltyFactor = 0.5

	// preferredSlotBonus is added when the event starts within one of the
	// volunteer's preferred time-of-day buckets.
	preferredSlotBonus = 10.0

	minutesPerDay = 24 * 60
)

// CalculateAvailabilityScore scores how well a volunteer's availability
// covers the event's time window. The base score is the fraction of the
// event window covered by the union of slots matching the event's day,
// adjusted by the weekend penalty and preferred-time bonus.
func CalculateAvailabilityScore(profile *models.VolunteerProfile, event *models.Event) float64 {
	if profile == nil || len(profile.Availability) == 0 {
		return noAvailabilityScore
	}

	windowStart, windowEnd := eventWindow(event)

	windows := matchingSlotWindows(profile.Availability, event.StartDate)
	if len(windows) == 0 {
		return 0
	}

	overlap := unionOverlapMinutes(windows, windowStart, windowEnd)
	score := 100 * float64(overlap) / float64(windowEnd-windowStart)

	prefs := profile.Preferences
	if prefs != nil && prefs.WeekdaysOnly && isWeekend(event.StartDate.Weekday()) {
		score *= weekendPenaltyFactor
	}
	if prefs != nil && inPreferredSlot(windowStart, prefs.PreferredTimeSlots) {
		score += preferredSlotBonus
		if score > 100 {
			score = 100
		}
	}

	return score
}

// eventWindow derives the event's wall-clock window in minutes since
// midnight of its start date. Events ending on a later day are clamped to
// midnight.
func eventWindow(event *models.Event) (int, int) {
	start := minutesOfDay(event.StartDate)
	end := minutesPerDay
	if sameDay(event.StartDate, event.EndDate) {
		end = minutesOfDay(event.EndDate)
	}
	if end <= start {
		end = minutesPerDay
	}
	return start, end
}

// matchingSlotWindows collects the time windows of slots that cover the
// event's day: recurring slots on the same weekday, or one-off slots on the
// same date. Malformed slots are skipped.
func matchingSlotWindows(slots []models.AvailabilitySlot, eventStart time.Time) [][2]int {
	var windows [][2]int
	for _, slot := range slots {
		if !slotMatchesDay(slot, eventStart) {
			continue
		}
		start, err := models.ParseClock(slot.StartTime)
		if err != nil {
			continue
		}
		end, err := models.ParseClock(slot.EndTime)
		if err != nil || end <= start {
			continue
		}
		windows = append(windows, [2]int{start, end})
	}
	return windows
}

func slotMatchesDay(slot models.AvailabilitySlot, eventStart time.Time) bool {
	if slot.IsRecurring {
		return slot.DayOfWeek == eventStart.Weekday()
	}
	return slot.SpecificDate != nil && sameDay(*slot.SpecificDate, eventStart)
}

// unionOverlapMinutes returns how many minutes of [windowStart, windowEnd)
// are covered by the union of the given windows. Overlapping slots are
// merged so coverage is never double counted.
func unionOverlapMinutes(windows [][2]int, windowStart, windowEnd int) int {
	sort.Slice(windows, func(i, j int) bool {
		return windows[i][0] < windows[j][0]
	})

	covered := 0
	cursor := windowStart
	for _, w := range windows {
		start, end := w[0], w[1]
		if start < cursor {
			start = cursor
		}
		if end > windowEnd {
			end = windowEnd
		}
		if end <= start {
			continue
		}
		covered += end - start
		cursor = end
	}
	return covered
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func isWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}

// inPreferredSlot reports whether the event start time falls inside one of
// the volunteer's preferred time-of-day buckets. Buckets: morning
// 05:00-11:59, afternoon 12:00-16:59, evening 17:00-21:59.
func inPreferredSlot(startMinutes int, preferred []models.TimeOfDay) bool {
	bucket := timeOfDayBucket(startMinutes)
	if bucket == "" {
		return false
	}
	for _, p := range preferred {
		if p == bucket {
			return true
		}
	}
	return false
}

func timeOfDayBucket(minutes int) models.TimeOfDay {
	switch {
	case minutes >= 5*60 && minutes < 12*60:
		return models.TimeOfDayMorning
	case minutes >= 12*60 && minutes < 17*60:
		return models.TimeOfDayAfternoon
	case minutes >= 17*60 && minutes < 22*60:
		return models.TimeOfDayEvening
	default:
		return ""
	}
}
