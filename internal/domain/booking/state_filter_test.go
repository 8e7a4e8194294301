package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendhub/service-lending/internal/domain/apperr"
)

func TestParseStateFilter(t *testing.T) {
	tests := []struct {
		in   string
		want StateFilter
	}{
		{"", FilterAll},
		{"ALL", FilterAll},
		{"all", FilterAll},
		{"Current", FilterCurrent},
		{"PAST", FilterPast},
		{"future", FilterFuture},
		{"waiting", FilterWaiting},
		{"REJECTED", FilterRejected},
	}

	for _, tt := range tests {
		t.Run("parses "+tt.in, func(t *testing.T) {
			got, err := ParseStateFilter(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStateFilter_Unknown(t *testing.T) {
	_, err := ParseStateFilter("APPROVED")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
