package specsadapter

import (
	"context"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/restartfu/hwprofile/internal/cpu"
	"github.com/restartfu/hwprofile/internal/domain"
	"github.com/restartfu/hwprofile/internal/observability"
	"github.com/restartfu/hwprofile/internal/specs"
	"go.uber.org/zap"
)

type Reader struct {
	logger  *zap.Logger
	timeout time.Duration
	read    func(context.Context) (specs.Specs, error)
}

// NewReader returns a detector bounded by timeout; zero means no limit.
func NewReader(logger *zap.Logger, timeout time.Duration) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		logger:  logger,
		timeout: timeout,
		read:    specs.ReadSpecs,
	}
}

// Detect probes the machine and converts the result into a profile. Probe
// failures are reported but the partially filled profile is still returned.
func (r *Reader) Detect(ctx context.Context) (domain.HardwareProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.HardwareProfile{}, err
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	current, readErr := r.read(ctx)
	profile, parseErr := ProfileFromSpecs(current)
	err := multierror.Append(readErr, parseErr).ErrorOrNil()
	if err != nil {
		r.logger.Warn("hardware detection incomplete", zap.Error(err))
		observability.CaptureError(err, map[string]string{
			"component": "specs",
			"operation": "detect",
		}, map[string]interface{}{
			"cpu_brand": current.CPUBrand,
		})
	}
	return profile, err
}

// ProfileFromSpecs derives profile fields from raw probe output. A brand
// string the parser rejects still yields a usable vendor and model.
func ProfileFromSpecs(s specs.Specs) (domain.HardwareProfile, error) {
	profile := domain.HardwareProfile{
		OS:               s.OS,
		GPUs:             s.GPUs,
		StorageDevices:   s.StorageDevices,
		OEMModel:         s.OEMModel,
		EthernetChipset:  s.Chipsets.Ethernet,
		WLANChipset:      s.Chipsets.WLAN,
		BluetoothChipset: s.Chipsets.Bluetooth,
	}
	if s.MemoryBytes > 0 {
		profile.MemoryGB = specs.NormalizeMemoryGB(s.MemoryBytes)
	}

	if s.CPUBrand == "" {
		profile.CPUVendor = vendorFromID(s.CPUVendorID)
		return profile, nil
	}
	brand, err := cpu.ParseBrand(s.CPUBrand)
	if err != nil {
		profile.CPUVendor = vendorFromID(s.CPUVendorID)
		profile.CPUModel = s.CPUBrand
		profile.CPUGeneration = cpu.UnknownGeneration
		return profile, err
	}
	profile.CPUVendor = brand.Vendor
	profile.CPUModel = brand.Model
	profile.CPUGeneration = brand.Generation()
	return profile, nil
}

func vendorFromID(id string) string {
	switch id {
	case "GenuineIntel":
		return "Intel"
	case "AuthenticAMD":
		return "AMD"
	default:
		return id
	}
}
