package specsadapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/restartfu/hwprofile/internal/cpu"
	"github.com/restartfu/hwprofile/internal/domain"
	"github.com/restartfu/hwprofile/internal/specs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestProfileFromSpecs(t *testing.T) {
	profile, err := ProfileFromSpecs(specs.Specs{
		OS:             domain.OSWindows,
		CPUBrand:       "Intel(R) Core(TM) i7-8700 CPU @ 3.20GHz",
		CPUVendorID:    "GenuineIntel",
		MemoryBytes:    34308382720,
		GPUs:           []string{"NVIDIA GeForce GTX 1050 Ti"},
		StorageDevices: []string{"Samsung SSD 970 EVO (SSD, 932 GiB)"},
		OEMModel:       "Dell Inc. OptiPlex 7060",
		Chipsets:       specs.Chipsets{Ethernet: "Intel I219-V"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.HardwareProfile{
		OS:              domain.OSWindows,
		CPUVendor:       "Intel",
		CPUGeneration:   "8",
		CPUModel:        "i7-8700",
		GPUs:            []string{"NVIDIA GeForce GTX 1050 Ti"},
		MemoryGB:        32,
		StorageDevices:  []string{"Samsung SSD 970 EVO (SSD, 932 GiB)"},
		OEMModel:        "Dell Inc. OptiPlex 7060",
		EthernetChipset: "Intel I219-V",
	}, profile)
}

func TestProfileFromSpecsMalformedBrand(t *testing.T) {
	profile, err := ProfileFromSpecs(specs.Specs{
		CPUBrand:    "Apple M2",
		CPUVendorID: "Apple",
	})
	assert.ErrorIs(t, err, cpu.ErrMalformedBrandString)
	assert.Equal(t, "Apple", profile.CPUVendor)
	assert.Equal(t, "Apple M2", profile.CPUModel)
	assert.Equal(t, cpu.UnknownGeneration, profile.CPUGeneration)
	assert.Zero(t, profile.MemoryGB)
}

func TestProfileFromSpecsVendorID(t *testing.T) {
	profile, err := ProfileFromSpecs(specs.Specs{CPUVendorID: "AuthenticAMD"})
	require.NoError(t, err)
	assert.Equal(t, "AMD", profile.CPUVendor)
}

func TestReaderDetectReturnsPartialProfile(t *testing.T) {
	probeErr := errors.New("pci unavailable")
	reader := NewReader(zaptest.NewLogger(t), time.Second)
	reader.read = func(context.Context) (specs.Specs, error) {
		return specs.Specs{OS: domain.OSLinux, MemoryBytes: 8 << 30}, probeErr
	}

	profile, err := reader.Detect(context.Background())
	assert.ErrorIs(t, err, probeErr)
	assert.Equal(t, domain.OSLinux, profile.OS)
	assert.Equal(t, uint64(8), profile.MemoryGB)
}

func TestReaderDetectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader(nil, 0).Detect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReaderDetectAppliesTimeout(t *testing.T) {
	reader := NewReader(nil, time.Millisecond)
	reader.read = func(ctx context.Context) (specs.Specs, error) {
		<-ctx.Done()
		return specs.Specs{}, ctx.Err()
	}

	_, err := reader.Detect(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
