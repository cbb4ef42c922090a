package specs

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMemoryGB(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  uint64
	}{
		{name: "zero", bytes: 0, want: 2},
		{name: "one byte", bytes: 1, want: 2},
		{name: "one gigabyte", bytes: 1 << 30, want: 2},
		{name: "two gigabytes", bytes: 2 << 30, want: 2},
		{name: "three gigabytes", bytes: 3 << 30, want: 4},
		{name: "five gigabytes", bytes: 5 << 30, want: 4},
		{name: "six gigabytes", bytes: 6 << 30, want: 8},
		{name: "almost thirty two", bytes: 34308382720, want: 32},
		{name: "sixteen exact", bytes: 16 << 30, want: 16},
		{name: "large server", bytes: 1000 << 30, want: 1024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMemoryGB(tt.bytes))
		})
	}
}

func TestNormalizeMemoryGBProperties(t *testing.T) {
	inputs := []uint64{0, 1, 512 << 20, 1 << 30, 3 << 30, 7 << 30, 12 << 30, 24 << 30, 34308382720, 96 << 30, 1 << 40}
	for _, b := range inputs {
		got := NormalizeMemoryGB(b)
		assert.GreaterOrEqual(t, got, uint64(2), "bytes %d", b)
		assert.Equal(t, 1, bits.OnesCount64(got), "bytes %d gives %d", b, got)
		assert.Equal(t, got, NormalizeMemoryGB(got<<30), "re-normalising %d", b)
	}
}
