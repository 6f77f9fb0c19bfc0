package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is the on-disk directory whose files override the embedded prefabs.
const Dir = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

// Load reads the named prefab, preferring a copy under Dir on disk so specs
// can be tuned without a rebuild.
func Load(name string) ([]byte, error) {
	name = prefabName(name)
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("invalid prefab name %q", name)
	}

	data, err := fs.ReadFile(os.DirFS(Dir), name)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return fs.ReadFile(PrefabsFS, name)
}

// prefabName turns "prefabs/samurai.yaml", "./samurai.yaml" and
// "samurai.yaml" into the same name relative to Dir.
func prefabName(name string) string {
	if name == "" {
		return ""
	}
	name = path.Clean(filepath.ToSlash(name))
	return strings.TrimPrefix(name, Dir+"/")
}
