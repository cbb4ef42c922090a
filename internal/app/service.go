package app

import (
	"context"
	"time"

	"github.com/restartfu/hwprofile/internal/cpu"
	"github.com/restartfu/hwprofile/internal/domain"
	"github.com/restartfu/hwprofile/internal/ports"
	"github.com/restartfu/hwprofile/internal/specs"
	"go.uber.org/zap"
)

type Service struct {
	detector ports.ProfileDetector
	prompter ports.Prompter
	logger   *zap.Logger
}

// NewService wires the service. prompter may be nil when no interactive
// flow is used.
func NewService(detector ports.ProfileDetector, prompter ports.Prompter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		detector: detector,
		prompter: prompter,
		logger:   logger,
	}
}

func (s *Service) Health() domain.Health {
	return domain.Health{
		Status: "ok",
		Time:   time.Now().UTC(),
	}
}

// Detect returns the completed auto-detected profile. The error reports
// probes that failed; the profile is usable either way.
func (s *Service) Detect(ctx context.Context) (domain.HardwareProfile, error) {
	profile, err := s.detector.Detect(ctx)
	return profile.Complete(), err
}

func (s *Service) ParseBrand(brand string) (cpu.Brand, error) {
	return cpu.ParseBrand(brand)
}

func (s *Service) NormalizeMemory(bytes uint64) uint64 {
	return specs.NormalizeMemoryGB(bytes)
}
