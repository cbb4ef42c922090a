package specs

import (
	"fmt"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/pci"
)

func readGPUs() ([]string, error) {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, fmt.Errorf("read gpu info: %w", err)
	}
	var names []string
	for _, card := range info.GraphicsCards {
		if card == nil {
			continue
		}
		if name := deviceName(card.DeviceInfo); name != "" {
			names = append(names, name)
		}
	}
	return uniqueNonEmpty(names), nil
}

// deviceName joins the PCI database vendor and product names of a device.
func deviceName(device *pci.Device) string {
	if device == nil {
		return ""
	}
	var vendor, product string
	if device.Vendor != nil {
		vendor = device.Vendor.Name
	}
	if device.Product != nil {
		product = device.Product.Name
	}
	return joinNonEmpty(vendor, product)
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" && !strings.EqualFold(part, "unknown") {
			kept = append(kept, part)
		}
	}
	return strings.Join(strings.Fields(strings.Join(kept, " ")), " ")
}
