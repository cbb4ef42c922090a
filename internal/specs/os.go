package specs

import (
	"context"
	"fmt"
	"strings"

	"github.com/restartfu/hwprofile/internal/domain"
	"github.com/shirou/gopsutil/v4/host"
)

func readOS(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("read host info: %w", err)
	}
	return OSFromHost(info.OS), nil
}

// OSFromHost maps a GOOS-style host name to a profile OS identifier.
// Unsupported systems map to the empty string.
func OSFromHost(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows":
		return domain.OSWindows
	case "linux":
		return domain.OSLinux
	case "darwin", "macos":
		return domain.OSMacOS
	default:
		return ""
	}
}
