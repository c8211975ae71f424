package attendance

// HistoryEntry is one committed check-in from the current attendance week.
// ComeHour/ComeMinute are the stored local wall clock of the arrival.
type HistoryEntry struct {
	ComeHour         int
	ComeMinute       int
	ExemptionApplied bool
}

// perfectArrival: strictly before 08:00, or exactly 08:00.
func perfectArrival(h HistoryEntry) bool {
	return h.ComeHour < 8 || (h.ComeHour == 8 && h.ComeMinute == 0)
}

// EvaluateExemption decides whether a late_10 arrival is forgiven. The
// exemption is a once-per-attendance-week resource and requires an earlier
// perfect-attendance arrival in the same week. Every other status is never
// exempt.
func EvaluateExemption(status LateStatus, history []HistoryEntry) bool {
	if status != StatusLate10 {
		return false
	}

	for _, h := range history {
		if h.ExemptionApplied {
			return false
		}
	}

	for _, h := range history {
		if perfectArrival(h) {
			return true
		}
	}

	return false
}
