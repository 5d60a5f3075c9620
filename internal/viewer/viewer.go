// Package viewer hands a rendered graph artifact to an external viewer
// program.
package viewer

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Run invokes the viewer executable with the artifact path as its only
// argument and waits for it to exit.
func Run(ctx context.Context, viewerPath, artifactPath string) error {
	if viewerPath == "" {
		return fmt.Errorf("no viewer executable configured")
	}

	out, err := exec.CommandContext(ctx, viewerPath, artifactPath).CombinedOutput()
	if err != nil {
		return fmt.Errorf("viewer %s failed: %w: %s", viewerPath, err, strings.TrimSpace(string(out)))
	}
	return nil
}
