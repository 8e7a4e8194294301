package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name                       string
		existingStart, existingEnd time.Time
		start, end                 time.Time
		want                       bool
	}{
		{"disjoint before", at(0), at(2), at(3), at(5), false},
		{"disjoint after", at(6), at(8), at(3), at(5), false},
		{"identical windows", at(3), at(5), at(3), at(5), true},
		{"existing start inside candidate", at(4), at(8), at(3), at(5), true},
		{"existing end inside candidate", at(0), at(4), at(3), at(5), true},
		{"existing contains candidate", at(0), at(8), at(3), at(5), true},
		{"candidate contains existing", at(3), at(4), at(2), at(6), true},
		{"touching at candidate start", at(0), at(3), at(3), at(5), true},
		{"touching at candidate end", at(5), at(8), at(3), at(5), true},
		{"one second gap before", at(0), at(3).Add(-time.Second), at(3), at(5), false},
		{"one second gap after", at(5).Add(time.Second), at(8), at(3), at(5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.existingStart, tt.existingEnd, tt.start, tt.end)
			assert.Equal(t, tt.want, got)
		})
	}
}
