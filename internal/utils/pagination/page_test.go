package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name               string
		number, size       int
		wantNumber, wantSz int
	}{
		{name: "passes through valid values", number: 3, size: 25, wantNumber: 3, wantSz: 25},
		{name: "clamps page to one", number: -4, size: 10, wantNumber: 1, wantSz: 10},
		{name: "defaults size", number: 1, size: 0, wantNumber: 1, wantSz: 10},
		{name: "caps size", number: 2, size: 5000, wantNumber: 2, wantSz: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.number, tt.size, 10, 100)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantSz, p.Size)
		})
	}
}

func TestNewPage_FallsBackToPackageDefaults(t *testing.T) {
	p := NewPage(1, 0, 0, 0)
	assert.Equal(t, DefaultPageSize, p.Size)

	p = NewPage(1, 1000, 0, 0)
	assert.Equal(t, MaxPageSize, p.Size)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(0, 10), "negative offsets clamp to zero")
	assert.Equal(t, 0, Offset(-2, 10))
	assert.Equal(t, 40, NewPage(5, 10, 10, 100).Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}
