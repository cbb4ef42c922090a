package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteFillsEmptyFields(t *testing.T) {
	profile := HardwareProfile{}.Complete()

	assert.Equal(t, Unknown, profile.OS)
	assert.Equal(t, Unknown, profile.CPUVendor)
	assert.Equal(t, Unknown, profile.CPUGeneration)
	assert.Equal(t, Unknown, profile.CPUModel)
	assert.Equal(t, []string{Unknown}, profile.GPUs)
	assert.Equal(t, uint64(MinMemoryGB), profile.MemoryGB)
	assert.Equal(t, []string{Unknown}, profile.StorageDevices)
	assert.Equal(t, Unknown, profile.OEMModel)
	assert.Equal(t, Unknown, profile.EthernetChipset)
	assert.Equal(t, Unknown, profile.WLANChipset)
	assert.Equal(t, Unknown, profile.BluetoothChipset)
}

func TestCompleteKeepsValuesAndDoesNotAlias(t *testing.T) {
	gpus := []string{"NVIDIA GeForce GTX 1050 Ti"}
	profile := HardwareProfile{
		OS:       OSWindows,
		CPUModel: "i7-8700",
		GPUs:     gpus,
		MemoryGB: 32,
	}.Complete()

	assert.Equal(t, OSWindows, profile.OS)
	assert.Equal(t, "i7-8700", profile.CPUModel)
	assert.Equal(t, uint64(32), profile.MemoryGB)
	assert.Equal(t, gpus, profile.GPUs)

	profile.GPUs[0] = "changed"
	assert.Equal(t, "NVIDIA GeForce GTX 1050 Ti", gpus[0])
}
