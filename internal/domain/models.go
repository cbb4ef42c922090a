package domain

import "time"

// Unknown marks a profile field that could be neither detected nor answered.
const Unknown = "Unknown"

// MinMemoryGB is the smallest memory size a profile reports.
const MinMemoryGB = 2

const (
	OSWindows = "windows"
	OSLinux   = "linux"
	OSMacOS   = "macos"
)

type Health struct {
	Status string
	Time   time.Time
}

type HardwareProfile struct {
	OS               string   `json:"os"`
	CPUVendor        string   `json:"cpu_vendor"`
	CPUGeneration    string   `json:"cpu_generation"`
	CPUModel         string   `json:"cpu_model"`
	GPUs             []string `json:"gpus"`
	MemoryGB         uint64   `json:"memory_gb"`
	StorageDevices   []string `json:"storage_devices"`
	OEMModel         string   `json:"oem_model"`
	EthernetChipset  string   `json:"ethernet_chipset"`
	WLANChipset      string   `json:"wlan_chipset"`
	BluetoothChipset string   `json:"bluetooth_chipset"`
}

// Complete returns a copy of the profile in which every unset field carries
// Unknown (or the memory floor), so no field is left uninitialised.
func (p HardwareProfile) Complete() HardwareProfile {
	out := p
	for _, field := range []*string{
		&out.OS,
		&out.CPUVendor,
		&out.CPUGeneration,
		&out.CPUModel,
		&out.OEMModel,
		&out.EthernetChipset,
		&out.WLANChipset,
		&out.BluetoothChipset,
	} {
		if *field == "" {
			*field = Unknown
		}
	}
	out.GPUs = completeList(p.GPUs)
	out.StorageDevices = completeList(p.StorageDevices)
	if out.MemoryGB == 0 {
		out.MemoryGB = MinMemoryGB
	}
	return out
}

func completeList(values []string) []string {
	if len(values) == 0 {
		return []string{Unknown}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
