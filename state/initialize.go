package state

import (
	"time"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

// ApplyOverrides folds command line overrides into loaded configuration so
// the rest of the program only has to look at Cfg.
func (e *LocalEnv) ApplyOverrides() {
	if e.Cfg == nil {
		return
	}
	if e.ItemsPerPage != 0 {
		e.Cfg.Layout.ItemsPerPage = e.ItemsPerPage
	}
	if len(e.Sheet) > 0 {
		e.Cfg.Source.Sheet = e.Sheet
	}
	if len(e.SnapshotPath) > 0 {
		e.Cfg.Source.Snapshot.Path = e.SnapshotPath
		e.Cfg.Source.Snapshot.Save = true
	}
	if e.NoSnapshot {
		e.Cfg.Source.Snapshot.Save = false
	}
	if e.NoTheme {
		e.Cfg.Theming.StripBullets = false
		e.Cfg.Theming.Command = ""
	}
}
