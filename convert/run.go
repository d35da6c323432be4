package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"issuedeck/common"
	"issuedeck/state"
)

// Run is "convert" command action: source table (or snapshot) to deck.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src, dst, err := arguments(cmd, log)
	if err != nil {
		return err
	}

	if cmd.IsSet("items-per-page") {
		n := cmd.Int("items-per-page")
		if n <= 0 {
			return fmt.Errorf("%w: items per page must be positive, got %d", common.ErrInvalidConfiguration, n)
		}
		env.ItemsPerPage = int(n)
	}
	env.Sheet = cmd.String("sheet")
	env.SnapshotPath = cmd.String("snapshot")
	env.NoSnapshot = cmd.Bool("no-snapshot")
	env.Overwrite = cmd.Bool("overwrite")
	env.NoTheme = cmd.Bool("no-theme")
	env.ApplyOverrides()

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		if err == nil {
			log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	_, err = process(ctx, env, src, dst, log)
	return err
}

// Snapshot is "snapshot" command action: source table to JSON snapshot, no
// deck is produced.
func Snapshot(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("snapshot")

	src, dst, err := arguments(cmd, log)
	if err != nil {
		return err
	}
	env.Sheet = cmd.String("sheet")
	env.ApplyOverrides()

	ds, err := loadDataset(ctx, env, src, log)
	if err != nil {
		return err
	}

	path := snapshotFor(src, dst)
	if strings.EqualFold(filepath.Ext(dst), ".json") {
		path = dst
	}
	if err := saveSnapshot(env, path, ds, log); err != nil {
		return err
	}
	log.Info("Snapshot saved", zap.String("to", path), zap.Int("records", ds.Total()), zap.Int("categories", len(ds.Groups)))
	return nil
}

// arguments returns absolute source and destination, empty destination is
// left empty and means "next to the source". Source existence is checked when
// it is read, missing table could be replaced by its snapshot.
func arguments(cmd *cli.Command, log *zap.Logger) (src, dst string, err error) {
	src = cmd.Args().Get(0)
	if len(src) == 0 {
		return "", "", errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return "", "", err
	}

	dst = cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return "", "", err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	return src, dst, nil
}
