package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Loader returns the container bytes of a script.
type Loader interface {
	Load(id int32) ([]byte, error)
}

// LoaderFunc is a function implementing Loader.
type LoaderFunc func(id int32) ([]byte, error)

// Load implements the Loader interface.
func (f LoaderFunc) Load(id int32) ([]byte, error) {
	return f(id)
}

// MapLoader serves scripts from memory.
type MapLoader map[int32][]byte

// Load implements the Loader interface.
func (m MapLoader) Load(id int32) ([]byte, error) {
	b, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("script %d: %w", id, os.ErrNotExist)
	}
	return b, nil
}

// DirLoader reads script id from the file <dir>/<id><ext>.
func DirLoader(dir, ext string) Loader {
	return LoaderFunc(func(id int32) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, strconv.FormatInt(int64(id), 10)+ext))
	})
}

// ListDir returns the sorted IDs of all scripts stored in dir the way
// DirLoader expects them, other files are ignored.
func ListDir(dir, ext string) ([]int32, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var ids []int32
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ext {
			continue
		}
		id, err := strconv.ParseInt(name[:len(name)-len(ext)], 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, int32(id))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
