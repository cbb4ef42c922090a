package specs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jaypipes/ghw"
)

const dmiDir = "/sys/devices/virtual/dmi/id"

var dmiPlaceholders = []string{
	"to be filled",
	"default string",
	"system product name",
	"system manufacturer",
	"not specified",
	"not applicable",
	"o.e.m.",
}

// readOEMModel reports the system vendor and product name, trying ghw first,
// then sysfs, then dmidecode.
func readOEMModel() (string, error) {
	if info, err := ghw.Product(ghw.WithDisableWarnings()); err == nil {
		if model := oemModel(info.Vendor, info.Name); model != "" {
			return model, nil
		}
	}

	vendor := readDMIFile(filepath.Join(dmiDir, "sys_vendor"))
	product := readDMIFile(filepath.Join(dmiDir, "product_name"))
	if model := oemModel(vendor, product); model != "" {
		return model, nil
	}

	out, err := runDMIDecode("system")
	if err != nil {
		return "", fmt.Errorf("read oem model: %w", err)
	}
	vendor, product = parseDMISystem(out)
	if model := oemModel(vendor, product); model != "" {
		return model, nil
	}
	return "", fmt.Errorf("oem model not reported")
}

func oemModel(vendor, product string) string {
	if !isUsefulDMIValue(vendor) {
		vendor = ""
	}
	if !isUsefulDMIValue(product) {
		return ""
	}
	return joinNonEmpty(vendor, product)
}

func readDMIFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func isUsefulDMIValue(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	switch lower {
	case "", "unknown", "none", "n/a":
		return false
	}
	for _, placeholder := range dmiPlaceholders {
		if strings.Contains(lower, placeholder) {
			return false
		}
	}
	return true
}

func parseDMISystem(out []byte) (string, string) {
	var manufacturer, product string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "Manufacturer:") && manufacturer == "" {
			manufacturer = strings.TrimSpace(strings.TrimPrefix(line, "Manufacturer:"))
		} else if strings.HasPrefix(line, "Product Name:") && product == "" {
			product = strings.TrimSpace(strings.TrimPrefix(line, "Product Name:"))
		}
	}
	return manufacturer, product
}

func runDMIDecode(section string) ([]byte, error) {
	binaries := []string{"dmidecode", "/usr/bin/dmidecode", "/usr/sbin/dmidecode", "/sbin/dmidecode"}

	for _, bin := range binaries {
		out, err := exec.Command(bin, "-t", section).Output()
		if err == nil || isUsableDMIOutput(out) {
			return out, nil
		}
	}
	for _, bin := range binaries {
		out, err := exec.Command("sudo", "-n", bin, "-t", section).Output()
		if err == nil || isUsableDMIOutput(out) {
			return out, nil
		}
	}
	return nil, fmt.Errorf("dmidecode unavailable")
}

func isUsableDMIOutput(out []byte) bool {
	return bytes.Contains(out, []byte("Information"))
}
