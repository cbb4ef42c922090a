package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrand(t *testing.T) {
	tests := []struct {
		name       string
		brand      string
		vendor     string
		model      string
		generation string
	}{
		{
			name:       "intel desktop",
			brand:      "Intel(R) Core(TM) i7-8700 CPU @ 3.20GHz",
			vendor:     "Intel",
			model:      "i7-8700",
			generation: "8",
		},
		{
			name:       "intel tenth generation",
			brand:      "Intel(R) Core(TM) i9-10900K CPU @ 3.70GHz",
			vendor:     "Intel",
			model:      "i9-10900K",
			generation: "1",
		},
		{
			name:       "amd layout keeps fixed index",
			brand:      "AMD Ryzen 7 5800X 8-Core Processor",
			vendor:     "AMD",
			model:      "7",
			generation: UnknownGeneration,
		},
		{
			name:       "extra whitespace",
			brand:      "  Intel(R)\tCore(TM)   i5-7500  CPU @ 3.40GHz ",
			vendor:     "Intel",
			model:      "i5-7500",
			generation: "7",
		},
		{
			name:       "exactly four tokens",
			brand:      "Vendor(R) Family X-1 CPU",
			vendor:     "Vendor",
			model:      "X-1",
			generation: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brand, err := ParseBrand(tt.brand)
			require.NoError(t, err)

			fields := strings.Fields(tt.brand)
			assert.Equal(t, strings.ReplaceAll(fields[0], "(R)", ""), brand.Vendor)
			assert.Equal(t, fields[2], brand.Model)
			assert.Equal(t, tt.vendor, brand.Vendor)
			assert.Equal(t, tt.model, brand.Model)
			assert.Equal(t, tt.generation, brand.Generation())
		})
	}
}

func TestParseBrandModelFollowsFamily(t *testing.T) {
	brand, err := ParseBrand("Intel(R) Core(TM) i7-8700 CPU @ 3.20GHz")
	require.NoError(t, err)
	assert.Equal(t, Brand{Vendor: "Intel", Model: "i7-8700"}, brand)
	assert.Equal(t, "8", brand.Generation())
	assert.NotEqual(t, "CPU", brand.Model)
}

func TestParseBrandMalformed(t *testing.T) {
	for _, brand := range []string{"", "   ", "AMD Ryzen", "Apple M2 Pro"} {
		_, err := ParseBrand(brand)
		assert.ErrorIs(t, err, ErrMalformedBrandString, "brand %q", brand)
	}
}

func TestGeneration(t *testing.T) {
	tests := map[string]string{
		"i7-8700": "8",
		"i9-":     UnknownGeneration,
		"M2":      UnknownGeneration,
		"":        UnknownGeneration,
		"a-b-c":   "b",
		"-":       UnknownGeneration,
		"-x":      "x",
		"i5-éx":   "é",
	}
	for model, want := range tests {
		assert.Equal(t, want, Generation(model), "model %q", model)
	}
}
