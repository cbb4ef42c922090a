package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/restartfu/hwprofile/internal/cpu"
	"github.com/restartfu/hwprofile/internal/domain"
	"github.com/restartfu/hwprofile/internal/ports"
	"go.uber.org/zap"
)

var (
	ErrExit      = errors.New("exit requested")
	ErrCancelled = errors.New("cancelled")
)

var errNoPrompter = errors.New("interactive prompts unavailable")

const (
	menuCreate = iota
	menuExit
)

const (
	modeAuto = iota
	modeManual
)

var (
	mainMenu = []string{"Create new EFI", "Exit"}
	modeMenu = []string{"Detect automatically", "Answer questions"}
	osMenu   = []string{"Windows", "Linux", "macOS"}
	osValues = []string{domain.OSWindows, domain.OSLinux, domain.OSMacOS}
)

// Run drives the interactive session: main menu, collection mode, then either
// the detected profile or the interview seeded with detected values.
func (s *Service) Run(ctx context.Context) (domain.HardwareProfile, error) {
	if s.prompter == nil {
		return domain.HardwareProfile{}, errNoPrompter
	}

	choice, err := s.prompter.Select("Choose what you would like to do:", mainMenu, menuCreate)
	if err != nil {
		return domain.HardwareProfile{}, promptError(err)
	}
	if choice == menuExit {
		return domain.HardwareProfile{}, ErrExit
	}

	detected, err := s.detector.Detect(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.HardwareProfile{}, ctxErr
		}
		s.logger.Info("continuing with partial detection", zap.Error(err))
	}

	mode, err := s.prompter.Select("How should the hardware be collected?", modeMenu, modeAuto)
	if err != nil {
		return domain.HardwareProfile{}, promptError(err)
	}
	if mode == modeAuto {
		return detected.Complete(), nil
	}
	return s.Interview(ctx, detected)
}

// Interview asks for every profile field, offering defaults as the answer
// used when the user just presses enter.
func (s *Service) Interview(ctx context.Context, defaults domain.HardwareProfile) (domain.HardwareProfile, error) {
	if s.prompter == nil {
		return domain.HardwareProfile{}, errNoPrompter
	}
	if err := ctx.Err(); err != nil {
		return domain.HardwareProfile{}, err
	}

	var (
		profile domain.HardwareProfile
		err     error
	)

	osIndex, err := s.prompter.Select("What OS do you have?", osMenu, indexOf(osValues, defaults.OS))
	if err != nil {
		return domain.HardwareProfile{}, promptError(err)
	}
	if osIndex >= 0 && osIndex < len(osValues) {
		profile.OS = osValues[osIndex]
	}

	questions := []struct {
		label  string
		def    string
		target *string
	}{
		{"What is your CPU Brand/Vendor?", defaults.CPUVendor, &profile.CPUVendor},
		{"What is your CPU generation? (8, 9, 10)", knownOrEmpty(defaults.CPUGeneration), &profile.CPUGeneration},
		{"What model is your CPU? (i7-8700)", defaults.CPUModel, &profile.CPUModel},
	}
	for _, q := range questions {
		if *q.target, err = s.input(q.label, q.def); err != nil {
			return domain.HardwareProfile{}, err
		}
	}

	if profile.GPUs, err = s.collectList(ctx, "What GPU do you have? (NVIDIA GTX 1050 Ti)", defaults.GPUs); err != nil {
		return domain.HardwareProfile{}, err
	}
	if profile.MemoryGB, err = s.askMemory(defaults.MemoryGB); err != nil {
		return domain.HardwareProfile{}, err
	}
	if profile.StorageDevices, err = s.collectList(ctx, "What storage device do you have?", defaults.StorageDevices); err != nil {
		return domain.HardwareProfile{}, err
	}

	questions = []struct {
		label  string
		def    string
		target *string
	}{
		{"What is your OEM model? (blank for a custom build)", defaults.OEMModel, &profile.OEMModel},
		{"What is your ethernet chipset?", defaults.EthernetChipset, &profile.EthernetChipset},
		{"What is your WLAN chipset?", defaults.WLANChipset, &profile.WLANChipset},
		{"What is your bluetooth chipset?", defaults.BluetoothChipset, &profile.BluetoothChipset},
	}
	for _, q := range questions {
		if *q.target, err = s.input(q.label, q.def); err != nil {
			return domain.HardwareProfile{}, err
		}
	}

	return profile.Complete(), nil
}

// collectList asks for entries until the user declines to add more. Blank
// answers are skipped.
func (s *Service) collectList(ctx context.Context, label string, defaults []string) ([]string, error) {
	var values []string
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var def string
		if i < len(defaults) {
			def = knownOrEmpty(defaults[i])
		}
		value, err := s.input(label, def)
		if err != nil {
			return nil, err
		}
		if value != "" {
			values = append(values, value)
		}
		more, err := s.prompter.Confirm("Do you want to add more?", i+1 < len(defaults))
		if err != nil {
			return nil, promptError(err)
		}
		if !more {
			return values, nil
		}
	}
}

// askMemory takes the size in whole gigabytes as typed; it is not normalised.
func (s *Service) askMemory(def uint64) (uint64, error) {
	var defText string
	if def > 0 {
		defText = strconv.FormatUint(def, 10)
	}
	for {
		value, err := s.input("How much memory does your computer have? [write as int, and in gigabytes]", defText)
		if err != nil {
			return 0, err
		}
		gb, err := parseMemoryGB(value)
		if err == nil {
			return gb, nil
		}
		s.logger.Warn("invalid memory size, try again", zap.String("input", value), zap.Error(err))
	}
}

func parseMemoryGB(value string) (uint64, error) {
	value = strings.TrimSpace(strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(value)), "GB"))
	gb, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a whole number of gigabytes: %q", value)
	}
	if gb == 0 {
		return 0, errors.New("memory size must be positive")
	}
	return gb, nil
}

func (s *Service) input(label, def string) (string, error) {
	value, err := s.prompter.Input(label, def)
	if err != nil {
		return "", promptError(err)
	}
	return strings.TrimSpace(value), nil
}

func promptError(err error) error {
	if errors.Is(err, ports.ErrInterrupted) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return fmt.Errorf("prompt: %w", err)
}

func knownOrEmpty(value string) string {
	if value == domain.Unknown || value == cpu.UnknownGeneration {
		return ""
	}
	return value
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return 0
}
