package response

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// TempFile is a rendered document kept on disk until Remove is called.
type TempFile struct {
	Path string
}

// NewTempFile creates an empty temporary file in dir (os.TempDir when empty)
// and hands it to write. The file is removed again if write fails.
func NewTempFile(dir, pattern string, write func(w io.Writer) error) (*TempFile, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	tf := &TempFile{Path: f.Name()}

	if err := write(f); err != nil {
		f.Close()
		tf.Remove()
		return nil, err
	}

	if err := f.Close(); err != nil {
		tf.Remove()
		return nil, fmt.Errorf("close %s: %w", tf.Path, err)
	}

	return tf, nil
}

// Bytes reads the whole file.
func (t *TempFile) Bytes() ([]byte, error) {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.Path, err)
	}
	return data, nil
}

// Remove deletes the file. Removing twice is not an error.
func (t *TempFile) Remove() error {
	if err := os.Remove(t.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", t.Path, err)
	}
	return nil
}

// BuildResponse writes the file as an attachment and removes it afterwards.
func (t *TempFile) BuildResponse(w http.ResponseWriter, filename, mimeType string) error {
	defer t.Remove()

	data, err := t.Bytes()
	if err != nil {
		return err
	}

	return Write(w, data, mimeType, filename)
}
