package console

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/restartfu/hwprofile/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profile = domain.HardwareProfile{
	OS:             domain.OSWindows,
	CPUVendor:      "Intel",
	CPUGeneration:  "8",
	CPUModel:       "i7-8700",
	GPUs:           []string{"NVIDIA GeForce GTX 1050 Ti", "Intel UHD Graphics 630"},
	MemoryGB:       32,
	StorageDevices: []string{"Samsung SSD 970 EVO (SSD, 932 GiB)"},
}.Complete()

func TestText(t *testing.T) {
	out := Text(profile)

	assert.Contains(t, out, "│ Model:      i7-8700\n")
	assert.Contains(t, out, "│ Total:      32 GiB\n")
	assert.Contains(t, out, "│ [2] Intel UHD Graphics 630\n")
	assert.Contains(t, out, "│ WLAN:       Unknown\n")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "┌") || strings.HasPrefix(line, "└") {
			assert.Equal(t, ruleWidth+1, len([]rune(line)), line)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, profile, FormatJSON))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "i7-8700", decoded["cpu_model"])
	assert.Equal(t, float64(32), decoded["memory_gb"])
	assert.Equal(t, "Unknown", decoded["bluetooth_chipset"])
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, profile, "yaml"))
}
