package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		minute      int
		wantStatus  LateStatus
		wantPenalty int
	}{
		{name: "midnight", minute: 0, wantStatus: StatusPerfectOnTime, wantPenalty: 0},
		{name: "07:59", minute: 7*60 + 59, wantStatus: StatusPerfectOnTime, wantPenalty: 0},
		{name: "08:00 boundary", minute: 8 * 60, wantStatus: StatusOnTime, wantPenalty: 0},
		{name: "08:09 last on-time minute", minute: 8*60 + 9, wantStatus: StatusOnTime, wantPenalty: 0},
		{name: "08:10 boundary", minute: 8*60 + 10, wantStatus: StatusLate10, wantPenalty: 10},
		{name: "08:29 last 10% minute", minute: 8*60 + 29, wantStatus: StatusLate10, wantPenalty: 10},
		{name: "08:30 boundary", minute: 8*60 + 30, wantStatus: StatusLate15, wantPenalty: 15},
		{name: "08:45", minute: 8*60 + 45, wantStatus: StatusLate15, wantPenalty: 15},
		{name: "23:59", minute: 23*60 + 59, wantStatus: StatusLate15, wantPenalty: 15},
		{name: "past end of day", minute: 24*60 + 30, wantStatus: StatusLate15, wantPenalty: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, penalty := Classify(tt.minute)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantPenalty, penalty)
		})
	}
}

func TestClassifyTotalOverDay(t *testing.T) {
	// Every minute of the day maps to exactly one of the four states.
	for m := 0; m < 24*60; m++ {
		status, penalty := Classify(m)
		switch status {
		case StatusPerfectOnTime, StatusOnTime:
			assert.Equal(t, 0, penalty, "minute %d", m)
		case StatusLate10:
			assert.Equal(t, 10, penalty, "minute %d", m)
		case StatusLate15:
			assert.Equal(t, 15, penalty, "minute %d", m)
		default:
			t.Fatalf("minute %d produced unknown status %q", m, status)
		}
	}
}

func TestMealAllowance(t *testing.T) {
	tests := []struct {
		status LateStatus
		want   int
	}{
		{status: StatusPerfectOnTime, want: 50},
		{status: StatusOnTime, want: 0},
		{status: StatusLate10, want: 0},
		{status: StatusLate15, want: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, MealAllowance(tt.status, 50))
		})
	}
}
