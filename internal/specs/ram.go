package specs

import (
	"context"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v4/mem"
)

const (
	bytesPerGB        = 1 << 30
	minMemoryExponent = 1
)

// NormalizeMemoryGB converts a byte count into gigabytes rounded to the
// nearest power of two. The result is never below 2.
func NormalizeMemoryGB(bytes uint64) uint64 {
	if bytes == 0 {
		return 1 << minMemoryExponent
	}
	gb := float64(bytes) / bytesPerGB
	exponent := math.Round(math.Log2(gb))
	if exponent < minMemoryExponent {
		exponent = minMemoryExponent
	}
	return 1 << uint(exponent)
}

func readMemoryBytes(ctx context.Context) (uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read memory: %w", err)
	}
	return vm.Total, nil
}
