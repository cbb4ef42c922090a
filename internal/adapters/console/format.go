package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/restartfu/hwprofile/internal/domain"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

const ruleWidth = 62

// Write renders the profile in the given format.
func Write(w io.Writer, profile domain.HardwareProfile, format string) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case FormatText, "":
		_, err := io.WriteString(w, Text(profile))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func Text(profile domain.HardwareProfile) string {
	var sb strings.Builder

	section(&sb, "SYSTEM", [][2]string{
		{"OS", profile.OS},
		{"OEM model", profile.OEMModel},
	})
	section(&sb, "CPU", [][2]string{
		{"Vendor", profile.CPUVendor},
		{"Model", profile.CPUModel},
		{"Generation", profile.CPUGeneration},
	})
	section(&sb, "MEMORY", [][2]string{
		{"Total", humanize.IBytes(profile.MemoryGB << 30)},
	})
	listSection(&sb, "GPU", profile.GPUs)
	listSection(&sb, "STORAGE", profile.StorageDevices)
	section(&sb, "NETWORK", [][2]string{
		{"Ethernet", profile.EthernetChipset},
		{"WLAN", profile.WLANChipset},
		{"Bluetooth", profile.BluetoothChipset},
	})

	return sb.String()
}

func section(sb *strings.Builder, title string, rows [][2]string) {
	header(sb, title)
	for _, row := range rows {
		fmt.Fprintf(sb, "│ %-11s %s\n", row[0]+":", row[1])
	}
	footer(sb)
}

func listSection(sb *strings.Builder, title string, items []string) {
	header(sb, title)
	for i, item := range items {
		fmt.Fprintf(sb, "│ [%d] %s\n", i+1, item)
	}
	footer(sb)
}

func header(sb *strings.Builder, title string) {
	prefix := "┌─ " + title + " "
	fill := ruleWidth - len([]rune(prefix))
	if fill < 1 {
		fill = 1
	}
	sb.WriteString(prefix + strings.Repeat("─", fill) + "┐\n")
}

func footer(sb *strings.Builder) {
	sb.WriteString("└" + strings.Repeat("─", ruleWidth-1) + "┘\n\n")
}
