package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFromOffset(t *testing.T) {
	tests := []struct {
		from, size, want int
	}{
		{0, 20, 0},
		{0, 1, 0},
		{5, 20, 0},
		{20, 20, 1},
		{21, 20, 1},
		{40, 20, 2},
		{7, 3, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageFromOffset(tt.from, tt.size),
			"from=%d size=%d", tt.from, tt.size)
	}
}

func TestNewPaginatedResult(t *testing.T) {
	r := NewPaginatedResult([]string{"a", "b"}, 12, 1, 2)
	assert.Equal(t, []string{"a", "b"}, r.Items)
	assert.Equal(t, int64(12), r.Total)
	assert.Equal(t, 1, r.Page)
	assert.Equal(t, 2, r.Limit)
}
