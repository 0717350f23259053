// SPDX-License-Identifier: MPL-2.0

package kernelinfo

import (
	"context"
	"log/slog"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/tks/tks/pkg/kversion"
)

// kernelRelease queries the running kernel release (uname -r).
// Tests replace it.
var kernelRelease = host.KernelVersionWithContext

func hostInfo(ctx context.Context, tree kversion.Version) (*HostInfo, error) {
	release, err := kernelRelease(ctx)
	if err != nil {
		return nil, &HostError{Err: err}
	}

	hv, err := kversion.ParseRelease(release)
	if err != nil {
		return nil, &HostError{Release: release, Err: err}
	}
	slog.Debug("running kernel", "release", release)

	return &HostInfo{
		Release: release,
		Version: hv,
		Compare: tree.Compare(hv),
	}, nil
}
