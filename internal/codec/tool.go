package codec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ToolExtensions are handed to an external converter.
var ToolExtensions = []string{".heic", ".heif"}

// Runner executes name with args.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %s: %w", name, msg, err)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// Tool converts through a platform utility: sips on macOS, heif-convert
// (libheif) everywhere else.
type Tool struct {
	GOOS     string
	LookPath func(string) (string, error)
	Run      Runner
}

func NewTool() *Tool {
	return &Tool{
		GOOS:     runtime.GOOS,
		LookPath: exec.LookPath,
		Run:      execRunner,
	}
}

func (t *Tool) Name() string { return "tool" }

func (t *Tool) Convert(ctx context.Context, src, dst, format string) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrDecode, src, err)
	}

	tmp := TempPath(dst)
	name, args, err := t.command(src, tmp, format)
	if err != nil {
		return err
	}

	path, err := t.LookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s not available: %w", ErrUnsupportedFormat, name, err)
	}

	if err := t.Run(ctx, path, args...); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %s: %w", ErrDecode, src, err)
	}

	if info, err := os.Stat(tmp); err != nil || info.Size() == 0 {
		os.Remove(tmp)
		return fmt.Errorf("%w: %s produced no output for %s", ErrDecode, name, src)
	}

	return Commit(tmp, dst)
}

func (t *Tool) command(src, out, format string) (string, []string, error) {
	f := NormalizeFormat(format)

	if t.GOOS == "darwin" {
		if !CanEncode(f) {
			return "", nil, fmt.Errorf("%w: output format %q", ErrUnsupportedFormat, format)
		}
		return "sips", []string{"-s", "format", f, src, "--out", out}, nil
	}

	switch f {
	case "jpeg":
		return "heif-convert", []string{"-q", fmt.Sprint(JPEGQuality), src, out}, nil
	case "png":
		return "heif-convert", []string{src, out}, nil
	default:
		return "", nil, fmt.Errorf("%w: output format %q", ErrUnsupportedFormat, format)
	}
}
