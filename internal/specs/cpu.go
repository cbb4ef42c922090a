package specs

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
)

type cpuBrand struct {
	Brand    string
	VendorID string
}

func readCPUBrand(ctx context.Context) (cpuBrand, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return cpuBrand{}, fmt.Errorf("read cpu info: %w", err)
	}
	for _, info := range infos {
		brand := strings.TrimSpace(info.ModelName)
		if brand != "" {
			return cpuBrand{Brand: brand, VendorID: strings.TrimSpace(info.VendorID)}, nil
		}
	}
	return cpuBrand{}, fmt.Errorf("cpu brand string not reported")
}
