package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"issuedeck/common"
)

var extensions = map[string]common.SourceKind{
	".xlsx": common.SourceKindXlsx,
	".xlsm": common.SourceKindXlsx,
	".xls":  common.SourceKindXls,
	".csv":  common.SourceKindCsv,
	".txt":  common.SourceKindCsv,
	".json": common.SourceKindJson,
}

// Detect decides what kind of source file is. Content signature wins when it
// is conclusive, generic containers (zip, OLE2) and plain text are resolved by
// extension.
func Detect(path string) (common.SourceKind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	byExt, known := extensions[ext]

	kind, err := filetype.MatchFile(path)
	if err != nil {
		return 0, fmt.Errorf("unable to access %s: %w", path, err)
	}
	switch kind.Extension {
	case "xlsx":
		return common.SourceKindXlsx, nil
	case "xls":
		return common.SourceKindXls, nil
	case "zip":
		if known && byExt == common.SourceKindXlsx {
			return byExt, nil
		}
	case "doc", "ppt", "msi":
		// OLE2 compound document, only extension could tell
		if known && byExt == common.SourceKindXls {
			return byExt, nil
		}
	}
	if kind != filetype.Unknown && !known {
		return 0, fmt.Errorf("%s: unsupported content type %s", path, kind.MIME.Value)
	}
	if !known {
		return 0, fmt.Errorf("%s: unable to detect source kind", path)
	}
	return byExt, nil
}
