package pipeline

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/pixkit/internal/codec"
)

// Source is one image file found under the input directory.
type Source struct {
	AbsPath string
	RelPath string // slash-separated, relative to the input directory
	Key     string // RelPath without its extension; the manifest key
	Format  string // as reported by codec.Loadable
	Size    int64
}

// ScanImages walks inputDir and returns every file codec.Load can read,
// in lexical order. Hidden directories are skipped.
func ScanImages(inputDir string) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != inputDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		format, ok := codec.Loadable(path)
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: rel,
			Key:     rel[:len(rel)-len(filepath.Ext(rel))],
			Format:  format,
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}
