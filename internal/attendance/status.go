package attendance

// LateStatus classifies an arrival against the shop's morning schedule.
type LateStatus string

const (
	StatusPerfectOnTime LateStatus = "perfect_on_time"
	StatusOnTime        LateStatus = "on_time"
	StatusLate10        LateStatus = "late_10"
	StatusLate15        LateStatus = "late_15"
)

// Arrival thresholds in minutes since local midnight, evaluated in order.
const (
	PerfectCutoffMinute = 8 * 60    // 08:00
	OnTimeCutoffMinute  = 8*60 + 10 // 08:10
	Late10CutoffMinute  = 8*60 + 30 // 08:30
)

// Classify maps a local minute-of-day to a lateness status and its default
// penalty percentage. Total over any minute value; anything past 08:30 is
// the 15% tier.
func Classify(minuteOfDay int) (LateStatus, int) {
	switch {
	case minuteOfDay < PerfectCutoffMinute:
		return StatusPerfectOnTime, 0
	case minuteOfDay < OnTimeCutoffMinute:
		return StatusOnTime, 0
	case minuteOfDay < Late10CutoffMinute:
		return StatusLate10, 10
	default:
		return StatusLate15, 15
	}
}

// Message is the human summary sent back with a check-in response.
func (s LateStatus) Message() string {
	switch s {
	case StatusPerfectOnTime:
		return "Perfect attendance, meal allowance granted"
	case StatusOnTime:
		return "On time"
	case StatusLate10:
		return "Late arrival, 10% penalty tier"
	case StatusLate15:
		return "Late arrival, 15% penalty tier"
	default:
		return "Unknown status"
	}
}

// MealAllowance grants the configured amount only for a perfect arrival.
// Unlike the exemption it carries no history dependency.
func MealAllowance(s LateStatus, amount int) int {
	if s == StatusPerfectOnTime {
		return amount
	}
	return 0
}
