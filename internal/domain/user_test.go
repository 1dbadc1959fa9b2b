package domain

import (
	"testing"
	"time"
)

func TestChangedPasswordAfter(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		changedAt *time.Time
		issuedAt  time.Time
		want      bool
	}{
		{"never changed", nil, base, false},
		{"changed before token", ptr(base.Add(-time.Hour)), base, false},
		{"changed after token", ptr(base.Add(time.Hour)), base, true},
		{"changed same second", ptr(base.Add(500 * time.Millisecond)), base, false},
		{"changed next second", ptr(base.Add(time.Second)), base, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{PasswordChangedAt: tt.changedAt}
			if got := u.ChangedPasswordAfter(tt.issuedAt); got != tt.want {
				t.Errorf("ChangedPasswordAfter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
