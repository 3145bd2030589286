package domain

import (
	"testing"
	"time"
)

func TestBonusesToGrant(t *testing.T) {
	tests := []struct {
		name          string
		previousStars int64
		starsToAdd    int64
		want          int64
	}{
		{
			name:          "crossing first threshold",
			previousStars: 2,
			starsToAdd:    1,
			want:          1,
		},
		{
			name:          "crossing second threshold from mid-band",
			previousStars: 5,
			starsToAdd:    3,
			want:          1,
		},
		{
			name:          "no crossing",
			previousStars: 3,
			starsToAdd:    2,
			want:          0,
		},
		{
			name:          "from zero below threshold",
			previousStars: 0,
			starsToAdd:    2,
			want:          0,
		},
		{
			name:          "from zero to exact threshold",
			previousStars: 0,
			starsToAdd:    3,
			want:          1,
		},
		{
			name:          "large award crosses several thresholds",
			previousStars: 1,
			starsToAdd:    11,
			want:          4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BonusesToGrant(tt.previousStars, tt.starsToAdd)
			if got != tt.want {
				t.Errorf("BonusesToGrant(%d, %d) = %d, want %d", tt.previousStars, tt.starsToAdd, got, tt.want)
			}
		})
	}
}

func TestBonusesToGrant_MatchesFloorDifference(t *testing.T) {
	for previous := int64(0); previous <= 20; previous++ {
		for add := int64(1); add <= 10; add++ {
			want := (previous+add)/StarsPerBonus - previous/StarsPerBonus
			got := BonusesToGrant(previous, add)
			if got != want {
				t.Fatalf("BonusesToGrant(%d, %d) = %d, want %d", previous, add, got, want)
			}
			if got < 0 {
				t.Fatalf("BonusesToGrant(%d, %d) went negative", previous, add)
			}
		}
	}
}

func TestWorkSession_Elapsed(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session WorkSession
		now     time.Time
		want    time.Duration
	}{
		{
			name: "running with folded break",
			session: WorkSession{
				Status:       SessionActive,
				StartedAt:    start,
				BreakSeconds: 600,
			},
			now:  start.Add(60 * time.Minute),
			want: 50 * time.Minute,
		},
		{
			name: "ended with no break",
			session: WorkSession{
				Status:    SessionEnded,
				StartedAt: start,
				EndedAt:   timePtr(start.Add(90 * time.Minute)),
			},
			now:  start.Add(5 * time.Hour),
			want: 90 * time.Minute,
		},
		{
			name: "open break counts against elapsed",
			session: WorkSession{
				Status:     SessionBreak,
				StartedAt:  start,
				BreakStart: timePtr(start.Add(30 * time.Minute)),
			},
			now:  start.Add(45 * time.Minute),
			want: 30 * time.Minute,
		},
		{
			name: "multiple breaks accumulate",
			session: WorkSession{
				Status:       SessionBreak,
				StartedAt:    start,
				BreakSeconds: 300,
				BreakStart:   timePtr(start.Add(40 * time.Minute)),
			},
			now:  start.Add(50 * time.Minute),
			want: 35 * time.Minute,
		},
		{
			name: "never negative",
			session: WorkSession{
				Status:       SessionActive,
				StartedAt:    start,
				BreakSeconds: 7200,
			},
			now:  start.Add(30 * time.Minute),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.session.Elapsed(tt.now)
			if got != tt.want {
				t.Errorf("Elapsed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorkSession_Open(t *testing.T) {
	if !(WorkSession{Status: SessionActive}).Open() {
		t.Error("ACTIVE session should be open")
	}
	if !(WorkSession{Status: SessionBreak}).Open() {
		t.Error("BREAK session should be open")
	}
	if (WorkSession{Status: SessionEnded}).Open() {
		t.Error("ENDED session should not be open")
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
