package specs

import (
	"fmt"
	"strings"

	"github.com/jaypipes/ghw"
)

type Chipsets struct {
	Ethernet  string
	WLAN      string
	Bluetooth string
}

type pciDevice struct {
	Class    string
	Subclass string
	Name     string
}

var wirelessHints = []string{"wireless", "wi-fi", "wifi", "wlan", "802.11"}

func readChipsets() (Chipsets, error) {
	info, err := ghw.PCI(ghw.WithDisableWarnings())
	if err != nil {
		return Chipsets{}, fmt.Errorf("read pci devices: %w", err)
	}
	devices := make([]pciDevice, 0, len(info.Devices))
	for _, d := range info.Devices {
		if d == nil {
			continue
		}
		device := pciDevice{Name: deviceName(d)}
		if d.Class != nil {
			device.Class = d.Class.Name
		}
		if d.Subclass != nil {
			device.Subclass = d.Subclass.Name
		}
		devices = append(devices, device)
	}
	return classifyChipsets(devices), nil
}

// classifyChipsets keeps the first ethernet, WLAN and bluetooth controller.
func classifyChipsets(devices []pciDevice) Chipsets {
	var chipsets Chipsets
	for _, d := range devices {
		if d.Name == "" {
			continue
		}
		subclass := strings.ToLower(d.Subclass)
		switch {
		case strings.Contains(subclass, "bluetooth"):
			if chipsets.Bluetooth == "" {
				chipsets.Bluetooth = d.Name
			}
		case subclass == "ethernet controller":
			if chipsets.Ethernet == "" {
				chipsets.Ethernet = d.Name
			}
		case isWireless(d):
			if chipsets.WLAN == "" {
				chipsets.WLAN = d.Name
			}
		}
	}
	return chipsets
}

func isWireless(d pciDevice) bool {
	class := strings.ToLower(d.Class)
	subclass := strings.ToLower(d.Subclass)
	if class == "network controller" && subclass == "network controller" {
		return true
	}
	if class != "network controller" && class != "wireless controller" {
		return false
	}
	name := strings.ToLower(d.Name)
	for _, hint := range wirelessHints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}
