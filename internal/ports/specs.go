package ports

import (
	"context"

	"github.com/restartfu/hwprofile/internal/domain"
)

// ProfileDetector probes the running machine. It returns whatever it could
// detect together with an error describing the probes that failed.
type ProfileDetector interface {
	Detect(ctx context.Context) (domain.HardwareProfile, error)
}
