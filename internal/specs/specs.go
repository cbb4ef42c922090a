package specs

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

// Specs is the raw result of probing the machine. Fields a probe could not
// fill are left empty.
type Specs struct {
	OS             string
	CPUBrand       string
	CPUVendorID    string
	MemoryBytes    uint64
	GPUs           []string
	StorageDevices []string
	OEMModel       string
	Chipsets       Chipsets
}

// ReadSpecs runs every probe. A failing probe does not stop the others: the
// partial result is returned together with the combined error.
func ReadSpecs(ctx context.Context) (Specs, error) {
	var (
		specs Specs
		errs  *multierror.Error
	)

	if err := ctx.Err(); err != nil {
		return specs, err
	}

	osName, err := readOS(ctx)
	errs = multierror.Append(errs, err)
	specs.OS = osName

	brand, err := readCPUBrand(ctx)
	errs = multierror.Append(errs, err)
	specs.CPUBrand = brand.Brand
	specs.CPUVendorID = brand.VendorID

	memory, err := readMemoryBytes(ctx)
	errs = multierror.Append(errs, err)
	specs.MemoryBytes = memory

	if err := ctx.Err(); err != nil {
		return specs, multierror.Append(errs, err).ErrorOrNil()
	}

	gpus, err := readGPUs()
	errs = multierror.Append(errs, err)
	specs.GPUs = gpus

	storage, err := readStorage()
	errs = multierror.Append(errs, err)
	specs.StorageDevices = storage

	oem, err := readOEMModel()
	errs = multierror.Append(errs, err)
	specs.OEMModel = oem

	chipsets, err := readChipsets()
	errs = multierror.Append(errs, err)
	specs.Chipsets = chipsets

	return specs, errs.ErrorOrNil()
}

func uniqueNonEmpty(values []string) []string {
	trimmed := lo.Map(values, func(v string, _ int) string {
		return strings.TrimSpace(v)
	})
	return lo.Uniq(lo.Filter(trimmed, func(v string, _ int) bool {
		return v != ""
	}))
}
