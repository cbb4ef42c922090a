package cpu

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// UnknownGeneration is returned when a model carries no generation code.
const UnknownGeneration = "Unknown"

// The model must be followed by at least one descriptor token such as "CPU"
// or "Processor".
const (
	vendorIndex = 0
	modelIndex  = 2
	minTokens   = 4
)

var ErrMalformedBrandString = errors.New("malformed cpu brand string")

type Brand struct {
	Vendor string
	Model  string
}

// ParseBrand extracts vendor and model from a brand string such as
// "Intel(R) Core(TM) i7-8700 CPU @ 3.20GHz". The vendor is the first token
// with "(R)" removed and the model is the third token, the one after the
// product family ("i7-8700" above). Fewer than four tokens is malformed.
func ParseBrand(brand string) (Brand, error) {
	fields := strings.Fields(brand)
	if len(fields) < minTokens {
		return Brand{}, fmt.Errorf("%w: %q has %d tokens, need at least %d",
			ErrMalformedBrandString, brand, len(fields), minTokens)
	}
	return Brand{
		Vendor: strings.ReplaceAll(fields[vendorIndex], "(R)", ""),
		Model:  fields[modelIndex],
	}, nil
}

func (b Brand) Generation() string {
	return Generation(b.Model)
}

// Generation returns the character following the first '-' of model,
// e.g. "8" for "i7-8700".
func Generation(model string) string {
	pos := strings.IndexByte(model, '-')
	if pos < 0 {
		return UnknownGeneration
	}
	rest := model[pos+1:]
	if rest == "" {
		return UnknownGeneration
	}
	r, size := utf8.DecodeRuneInString(rest)
	if r == utf8.RuneError && size <= 1 {
		return rest[:1]
	}
	return rest[:size]
}
