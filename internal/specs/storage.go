package specs

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jaypipes/ghw"
	"github.com/samber/lo"
)

var virtualDiskPrefixes = []string{"loop", "ram", "zram", "dm-", "sr", "fd"}

type disk struct {
	Name      string
	Vendor    string
	Model     string
	DriveType string
	SizeBytes uint64
}

func readStorage() ([]string, error) {
	info, err := ghw.Block(ghw.WithDisableWarnings())
	if err != nil {
		return nil, fmt.Errorf("read block devices: %w", err)
	}
	disks := make([]disk, 0, len(info.Disks))
	for _, d := range info.Disks {
		if d == nil {
			continue
		}
		disks = append(disks, disk{
			Name:      d.Name,
			Vendor:    d.Vendor,
			Model:     d.Model,
			DriveType: d.DriveType.String(),
			SizeBytes: d.SizeBytes,
		})
	}
	return describeDisks(disks), nil
}

func describeDisks(disks []disk) []string {
	physical := lo.Filter(disks, func(d disk, _ int) bool {
		return !isVirtualDisk(d.Name) && d.SizeBytes > 0
	})
	return lo.Map(physical, func(d disk, _ int) string {
		return describeDisk(d)
	})
}

func isVirtualDisk(name string) bool {
	for _, prefix := range virtualDiskPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// describeDisk renders e.g. "Samsung SSD 970 EVO (SSD, 932 GiB)".
func describeDisk(d disk) string {
	label := joinNonEmpty(d.Vendor, d.Model)
	if label == "" {
		label = d.Name
	}
	var details []string
	if driveType := strings.TrimSpace(d.DriveType); driveType != "" && !strings.EqualFold(driveType, "unknown") {
		details = append(details, driveType)
	}
	details = append(details, humanize.IBytes(d.SizeBytes))
	return fmt.Sprintf("%s (%s)", label, strings.Join(details, ", "))
}
