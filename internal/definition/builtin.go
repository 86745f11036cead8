package definition

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin loads one of the definitions shipped with the binary
func Builtin(name string) (*Definition, error) {
	return LoadFS(builtinFS, path.Join("builtin", name+".yaml"))
}

// BuiltinNames lists the shipped definitions
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
