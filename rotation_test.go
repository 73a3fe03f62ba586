package logsmith

import (
	"testing"
	"time"
)

func TestNewRotationLogic(t *testing.T) {
	t.Run("size only", func(t *testing.T) {
		logic, err := NewRotationLogic(RotationLogic{MaxBytes: 100, BackupCount: 3})
		if err != nil {
			t.Fatalf("NewRotationLogic failed: %v", err)
		}
		if logic.Interval != 1 {
			t.Errorf("expected interval defaulted to 1, got %d", logic.Interval)
		}
	})

	t.Run("time only", func(t *testing.T) {
		if _, err := NewRotationLogic(RotationLogic{When: WhenSecond, Interval: 5}); err != nil {
			t.Fatalf("NewRotationLogic failed: %v", err)
		}
	})

	t.Run("rejects negative maxBytes", func(t *testing.T) {
		_, err := NewRotationLogic(RotationLogic{MaxBytes: -1})
		if err == nil {
			t.Fatal("expected error")
		}
		if !IsConfigError(err) {
			t.Errorf("expected ConfigError, got %T", err)
		}
	})

	t.Run("rejects negative interval", func(t *testing.T) {
		if _, err := NewRotationLogic(RotationLogic{When: WhenSecond, Interval: -2}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("rejects negative backupCount", func(t *testing.T) {
		if _, err := NewRotationLogic(RotationLogic{MaxBytes: 10, BackupCount: -1}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("rejects no trigger at all", func(t *testing.T) {
		if _, err := NewRotationLogic(RotationLogic{BackupCount: 5}); err == nil {
			t.Fatal("expected error when neither maxBytes nor when is set")
		}
	})

	t.Run("rejects zero expiration interval", func(t *testing.T) {
		_, err := NewRotationLogic(RotationLogic{
			MaxBytes:   10,
			Expiration: &ExpirationRule{Scale: ExpireSeconds, Interval: 0},
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("copies nested rules", func(t *testing.T) {
		rule := &ExpirationRule{Scale: ExpireSeconds, Interval: 5}
		logic, err := NewRotationLogic(RotationLogic{MaxBytes: 10, Expiration: rule})
		if err != nil {
			t.Fatalf("NewRotationLogic failed: %v", err)
		}
		rule.Interval = 99
		if logic.Expiration.Interval != 5 {
			t.Errorf("expected copied expiration rule, got %d", logic.Expiration.Interval)
		}
	})
}

func TestNextRollover(t *testing.T) {
	base := time.Date(2024, time.June, 12, 10, 30, 0, 0, time.UTC) // a Wednesday

	t.Run("periodic units advance from now", func(t *testing.T) {
		tests := []struct {
			when     When
			interval int
			want     time.Time
		}{
			{WhenSecond, 1, base.Add(time.Second)},
			{WhenSecond, 30, base.Add(30 * time.Second)},
			{WhenMinute, 2, base.Add(2 * time.Minute)},
			{WhenHour, 3, base.Add(3 * time.Hour)},
		}
		for _, tt := range tests {
			logic, err := NewRotationLogic(RotationLogic{When: tt.when, Interval: tt.interval})
			if err != nil {
				t.Fatalf("NewRotationLogic failed: %v", err)
			}
			if got := logic.nextRollover(base); !got.Equal(tt.want) {
				t.Errorf("when=%v interval=%d: expected %v, got %v", tt.when, tt.interval, tt.want, got)
			}
		}
	})

	t.Run("everyday before the wall time rotates today", func(t *testing.T) {
		logic, err := NewRotationLogic(RotationLogic{
			When:      WhenEveryday,
			Timestamp: &RotationTimestamp{Hour: 23, Minute: 15},
		})
		if err != nil {
			t.Fatalf("NewRotationLogic failed: %v", err)
		}
		want := time.Date(2024, time.June, 12, 23, 15, 0, 0, time.UTC)
		if got := logic.nextRollover(base); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("everyday past the wall time rotates tomorrow", func(t *testing.T) {
		logic, err := NewRotationLogic(RotationLogic{
			When:      WhenEveryday,
			Timestamp: &RotationTimestamp{Hour: 9},
		})
		if err != nil {
			t.Fatalf("NewRotationLogic failed: %v", err)
		}
		want := time.Date(2024, time.June, 13, 9, 0, 0, 0, time.UTC)
		if got := logic.nextRollover(base); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("everyday defaults to midnight", func(t *testing.T) {
		logic, err := NewRotationLogic(RotationLogic{When: WhenEveryday})
		if err != nil {
			t.Fatalf("NewRotationLogic failed: %v", err)
		}
		want := time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC)
		if got := logic.nextRollover(base); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("weekday advances to the next occurrence", func(t *testing.T) {
		logic, err := NewRotationLogic(RotationLogic{
			When:      WhenFriday,
			Timestamp: &RotationTimestamp{Hour: 6},
		})
		if err != nil {
			t.Fatalf("NewRotationLogic failed: %v", err)
		}
		want := time.Date(2024, time.June, 14, 6, 0, 0, 0, time.UTC)
		if got := logic.nextRollover(base); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("same weekday past the wall time jumps a week", func(t *testing.T) {
		logic, err := NewRotationLogic(RotationLogic{
			When:      WhenWednesday,
			Timestamp: &RotationTimestamp{Hour: 8},
		})
		if err != nil {
			t.Fatalf("NewRotationLogic failed: %v", err)
		}
		want := time.Date(2024, time.June, 19, 8, 0, 0, 0, time.UTC)
		if got := logic.nextRollover(base); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("same weekday before the wall time rotates today", func(t *testing.T) {
		logic, err := NewRotationLogic(RotationLogic{
			When:      WhenWednesday,
			Timestamp: &RotationTimestamp{Hour: 22},
		})
		if err != nil {
			t.Fatalf("NewRotationLogic failed: %v", err)
		}
		want := time.Date(2024, time.June, 12, 22, 0, 0, 0, time.UTC)
		if got := logic.nextRollover(base); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}
