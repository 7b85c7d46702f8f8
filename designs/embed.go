package designs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads a curve script, preferring an on-disk copy under
// designs/scripts/ over the embedded one so edits don't need a rebuild.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskDesignPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed *.yaml
var DesignsFS embed.FS

// Load reads a design file, preferring an on-disk copy under designs/ over
// the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanDesignPath(name)
	if data, err := os.ReadFile(diskDesignPath(clean)); err == nil {
		return data, nil
	}
	return DesignsFS.ReadFile(clean)
}

func cleanDesignPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "designs/") {
		return strings.TrimPrefix(s, "designs/")
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "designs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "designs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskDesignPath(clean string) string {
	return filepath.Join("designs", filepath.FromSlash(clean))
}
