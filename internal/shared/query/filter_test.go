package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageFilter
		want PageFilter
	}{
		{"defaults", PageFilter{}, PageFilter{Page: 1, PageSize: 20}},
		{"caps size", PageFilter{Page: 3, PageSize: 500}, PageFilter{Page: 3, PageSize: 100}},
		{"negative page", PageFilter{Page: -2, PageSize: 5}, PageFilter{Page: 1, PageSize: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize(20, 100))
		})
	}
}

func TestPageFilter_OffsetAndTotalPages(t *testing.T) {
	f := PageFilter{Page: 3, PageSize: 10}
	assert.Equal(t, 20, f.Offset())
	assert.Equal(t, 1, f.TotalPages(0))
	assert.Equal(t, 3, f.TotalPages(21))
	assert.Equal(t, 2, f.TotalPages(20))
}
