package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateExemption(t *testing.T) {
	perfect := HistoryEntry{ComeHour: 7, ComeMinute: 55}
	eightSharp := HistoryEntry{ComeHour: 8, ComeMinute: 0}
	lateDay := HistoryEntry{ComeHour: 8, ComeMinute: 20}
	usedExemption := HistoryEntry{ComeHour: 8, ComeMinute: 15, ExemptionApplied: true}

	tests := []struct {
		name    string
		status  LateStatus
		history []HistoryEntry
		want    bool
	}{
		{
			name:    "late_10 with earlier perfect day",
			status:  StatusLate10,
			history: []HistoryEntry{perfect},
			want:    true,
		},
		{
			name:    "exactly 08:00 counts as perfect",
			status:  StatusLate10,
			history: []HistoryEntry{eightSharp},
			want:    true,
		},
		{
			name:    "no perfect day this week",
			status:  StatusLate10,
			history: []HistoryEntry{lateDay},
			want:    false,
		},
		{
			name:    "exemption already spent this week",
			status:  StatusLate10,
			history: []HistoryEntry{perfect, usedExemption},
			want:    false,
		},
		{
			name:    "empty week",
			status:  StatusLate10,
			history: nil,
			want:    false,
		},
		{
			name:    "late_15 never exempt even with perfect day",
			status:  StatusLate15,
			history: []HistoryEntry{perfect},
			want:    false,
		},
		{
			name:    "on_time never consults history",
			status:  StatusOnTime,
			history: []HistoryEntry{perfect},
			want:    false,
		},
		{
			name:    "perfect_on_time never exempt",
			status:  StatusPerfectOnTime,
			history: []HistoryEntry{perfect},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateExemption(tt.status, tt.history))
		})
	}
}
