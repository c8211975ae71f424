package attendance

import (
	"fmt"
	"time"
)

// weekAnchorOffset shifts the attendance-week boundary onto a mid-week day.
// (weekday + 4) mod 7 with Sunday = 0 anchors weeks on Wednesday. Exemption
// eligibility windows depend on this value; do not change it to a Sunday or
// Monday anchor.
const weekAnchorOffset = 4

// Location builds the fixed-offset business timezone. There is no DST
// handling on purpose.
func Location(offsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC+%d", offsetHours), offsetHours*60*60)
}

// MinuteOfDay returns minutes since local midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// WeekStart returns local midnight of the current attendance week's anchor
// day. The week is the scope of the once-per-week exemption.
func WeekStart(local time.Time) time.Time {
	daysSinceAnchor := (int(local.Weekday()) + weekAnchorOffset) % 7
	day := local.AddDate(0, 0, -daysSinceAnchor)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, local.Location())
}
