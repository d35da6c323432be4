//go:build windows

package output

import (
	"os"
	"strings"
)

// CleanFileName removes characters file system does not allow in file names.
func CleanFileName(in string) string {
	out := strings.TrimRight(strings.Map(func(sym rune) rune {
		if sym < 0x20 || strings.ContainsRune(`<>":/\|?*`+string(os.PathSeparator)+string(os.PathListSeparator), sym) {
			return -1
		}
		return sym
	}, in), ". ")
	if len(strings.TrimSpace(out)) == 0 {
		out = badFileName
	}
	return out
}
