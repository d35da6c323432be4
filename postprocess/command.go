package postprocess

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"issuedeck/common"
)

// Command runs external program (office automation script, theme applier)
// against saved deck. Arguments may refer to ${output}, ${dir} and ${theme}.
type Command struct {
	Program string
	Args    []string
	Theme   string
	Timeout time.Duration
	Log     *zap.Logger
}

func (c *Command) Name() string {
	return "command"
}

func (c *Command) Apply(ctx context.Context, deck string) error {
	if len(c.Program) == 0 {
		return fmt.Errorf("%w: no theming command configured", common.ErrThemingUnavailable)
	}
	program, err := exec.LookPath(c.Program)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrThemingUnavailable, err)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := c.expandArgs(deck)
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = filepath.Dir(deck)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("unable to redirect %s output: %w", program, err)
	}

	c.Log.Debug("Starting theming command", zap.String("program", program), zap.Strings("args", args))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("unable to start %s: %w", program, err)
	}

	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		c.Log.Debug(scanner.Text())
	}
	// overly long line stops scanner, program must not block on full pipe
	_, _ = io.Copy(io.Discard, out)

	if err := cmd.Wait(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); len(msg) > 0 {
			return fmt.Errorf("%s failed: %w: %s", program, err, msg)
		}
		return fmt.Errorf("%s failed: %w", program, err)
	}
	return nil
}

func (c *Command) expandArgs(deck string) []string {
	mapping := func(name string) string {
		switch name {
		case "output":
			return deck
		case "dir":
			return filepath.Dir(deck)
		case "theme":
			return c.Theme
		}
		// leave unknown references alone
		return "${" + name + "}"
	}
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		args = append(args, os.Expand(a, mapping))
	}
	return args
}
