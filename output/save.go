package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"issuedeck/common"
)

type SaveOptions struct {
	// replace existing file instead of moving to alternates
	Overwrite bool
	// number of "<base>_N" names tried after the destination
	Alternates int
}

// Candidates lists paths Save tries in order: destination itself followed by
// numbered alternates.
func Candidates(path string, alternates int) []string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	out := make([]string, 0, alternates+1)
	out = append(out, path)
	for i := 1; i <= alternates; i++ {
		out = append(out, fmt.Sprintf("%s_%d%s", base, i, ext))
	}
	return out
}

// Save atomically writes data to the first usable candidate path and returns
// it. Existing files are skipped unless overwrite is requested, candidates
// which cannot be written (permissions, file locked by another program,
// directory in the way) are logged and skipped.
func Save(path string, data []byte, opts SaveOptions, log *zap.Logger) (string, error) {
	var lastErr error
	for _, candidate := range Candidates(path, opts.Alternates) {
		if info, err := os.Stat(candidate); err == nil {
			if info.IsDir() {
				log.Debug("Destination is a directory, skipping", zap.String("path", candidate))
				lastErr = fmt.Errorf("destination %s is a directory", candidate)
				continue
			}
			if !opts.Overwrite {
				log.Debug("Destination already exists, skipping", zap.String("path", candidate))
				lastErr = fmt.Errorf("destination %s already exists", candidate)
				continue
			}
		}
		if err := os.MkdirAll(filepath.Dir(candidate), 0755); err != nil {
			log.Warn("Unable to create destination directory", zap.String("path", candidate), zap.Error(err))
			lastErr = err
			continue
		}
		if err := atomic.WriteFile(candidate, bytes.NewReader(data)); err != nil {
			log.Warn("Unable to write deck, trying next name", zap.String("path", candidate), zap.Error(err))
			lastErr = err
			continue
		}
		if candidate != path {
			log.Warn("Deck saved under alternate name", zap.String("requested", path), zap.String("actual", candidate))
		}
		return candidate, nil
	}
	return "", fmt.Errorf("%w: unable to save %s after %d attempts: %w", common.ErrOutputWriteConflict, path, opts.Alternates+1, lastErr)
}
