package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// runLess fetches like ls, writes the rendered result to a scratch file
// under the user's home directory and hands it to the system pager. The
// file is removed afterwards; removal failures are discarded, the file is
// disposable.
func runLess(ctx context.Context, s *Session, args []any) (any, error) {
	res, err := s.list(ctx, argString(args, 0))
	if err != nil {
		return nil, err
	}

	content, ok := res.(string)
	if !ok {
		content = dump.Sdump(res)
	}

	dir, err := os.UserHomeDir()
	if err != nil {
		dir = os.TempDir()
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".chargify-%d", time.Now().UnixNano()))
	if err := os.WriteFile(tmp, []byte(content), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write pager file: %w", err)
	}
	defer os.Remove(tmp)

	pager := exec.CommandContext(ctx, "less", "-R", tmp)
	pager.Stdin = os.Stdin
	pager.Stdout = os.Stdout
	pager.Stderr = os.Stderr
	if err := pager.Run(); err != nil {
		return nil, fmt.Errorf("pager failed: %w", err)
	}
	return nil, nil
}
