package report

import (
	"os"
	"path/filepath"
)

// Candidate directories searched for a Japanese TTF when no explicit
// path is configured.
var fontDirs = []string{
	"fonts",
	"/usr/share/fonts/opentype/ipaexfont-gothic",
	"/usr/share/fonts/opentype/ipaexfont-mincho",
	"/usr/share/fonts/truetype/ipaexfont",
	"/usr/share/fonts",
	"/Library/Fonts",
	"C:\\Windows\\Fonts",
}

var fontNames = []string{"ipaexg.ttf", "ipaexm.ttf", "ipag.ttf", "ipam.ttf"}

// ResolveFont returns the path of a usable TTF, or empty when none is
// found. An explicit path wins; otherwise the well-known locations are
// searched for the configured (or default) family names.
func ResolveFont(explicit, family string) string {
	if explicit != "" {
		if fileExists(explicit) {
			return explicit
		}
		return ""
	}

	names := fontNames
	if family != "" {
		names = append([]string{family + ".ttf"}, fontNames...)
	}
	for _, dir := range fontDirs {
		for _, name := range names {
			p := filepath.Join(dir, name)
			if fileExists(p) {
				return p
			}
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
