package domain

import (
	"strings"
	"time"
)

var slotLayouts = []string{"15:04", "3:04PM", "3:04 PM", "15:04:05"}

// SlotStart parses the start of a slot label such as "09:00-10:00" or "9:00 AM".
// ok is false when the label has no recognisable clock time.
func SlotStart(label string) (hour, minute int, ok bool) {
	start, _, _ := strings.Cut(label, "-")
	start = strings.ToUpper(strings.TrimSpace(start))
	for _, layout := range slotLayouts {
		if t, err := time.Parse(layout, start); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}

// SlotMatches reports whether an appointment at t (already in clinic time)
// occupies the slot with the given label.
func SlotMatches(label string, t time.Time) bool {
	h, m, ok := SlotStart(label)
	if !ok {
		return strings.TrimSpace(label) == t.Format("15:04")
	}
	return t.Hour() == h && t.Minute() == m
}

// SlotPeriod returns "AM" or "PM" for a parseable label, "" otherwise.
func SlotPeriod(label string) string {
	h, _, ok := SlotStart(label)
	switch {
	case !ok:
		return ""
	case h < 12:
		return "AM"
	default:
		return "PM"
	}
}

// NormalizeSlots trims labels and drops blanks and duplicates, keeping the
// first occurrence order.
func NormalizeSlots(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// AvailableSlots subtracts the slots consumed by booked from slots. Scheduled
// and completed appointments both occupy their slot. The result keeps the
// configured order and is never nil.
func AvailableSlots(slots []string, booked []Appointment, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}
	free := make([]string, 0, len(slots))
	for _, label := range slots {
		taken := false
		for _, a := range booked {
			if SlotMatches(label, a.Time.In(loc)) {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, label)
		}
	}
	return free
}
