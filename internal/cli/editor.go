package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ryandancy/yagc/internal/config"
)

const commitMsgFile = "COMMIT_MSG"

// editorMessageProvider collects a commit message by opening an editor
// on a scratch file under .yagc. It implements core.MessageProvider.
type editorMessageProvider struct {
	cfg *config.Config
}

// RequestMessage writes an empty message file, runs the configured
// editor (config editor, then $EDITOR, then vi) on it, and returns the
// saved content. The file is removed afterwards.
func (p *editorMessageProvider) RequestMessage(ctx context.Context) (string, error) {
	msgPath := filepath.Join(p.cfg.YagcPath(), commitMsgFile)
	if err := os.WriteFile(msgPath, nil, 0644); err != nil {
		return "", fmt.Errorf("create message file: %w", err)
	}
	defer os.Remove(msgPath)

	editor := p.cfg.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	// The editor setting may carry arguments ("code --wait").
	parts := strings.Fields(editor)
	args := append(parts[1:], msgPath)

	cmd := exec.CommandContext(ctx, parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run editor %s: %w", parts[0], err)
	}

	data, err := os.ReadFile(msgPath)
	if err != nil {
		return "", fmt.Errorf("read message file: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
