package podium

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// FileWriter serializes records as JSON documents under a destination
// directory, one file per group value. The destination site ingests them as
// `<group>-single-query.md` front-matter documents.
type FileWriter struct {
	Dir string
}

// NewFileWriter creates the destination directory if needed.
func NewFileWriter(dir string) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrap(err, "podium: create output dir")
	}
	return &FileWriter{Dir: dir}, nil
}

// WriteRecord writes one record. The one-space indent matches what the
// destination repository has committed historically, keeping diffs clean.
func (w *FileWriter) WriteRecord(name string, record *PodiumDivision) error {
	data, err := json.MarshalIndent(record, "", " ")
	if err != nil {
		return eris.Wrap(err, "podium: marshal record")
	}
	data = append(data, '\n')

	path := filepath.Join(w.Dir, name+"-single-query.md")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "podium: write %s", path)
	}
	return nil
}
