package exports

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// WriteArchive streams every export as a tar.xz bundle. Files are
// archived oldest-first so re-extracting preserves submission order.
func (s *Sink) WriteArchive(w io.Writer) error {
	names, err := s.ListFiles()
	if err != nil {
		return err
	}

	xzWriter, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("open archive stream: %w", err)
	}
	tarWriter := tar.NewWriter(xzWriter)

	for i := len(names) - 1; i >= 0; i-- {
		if err := s.archiveOne(tarWriter, names[i]); err != nil {
			return err
		}
	}

	if err := tarWriter.Close(); err != nil {
		return fmt.Errorf("finish archive: %w", err)
	}
	if err := xzWriter.Close(); err != nil {
		return fmt.Errorf("finish archive: %w", err)
	}
	return nil
}

func (s *Sink) archiveOne(tarWriter *tar.Writer, name string) error {
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat export %s: %w", name, err)
	}
	header := &tar.Header{
		Name:    name,
		Mode:    0o644,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	if err := tarWriter.WriteHeader(header); err != nil {
		return fmt.Errorf("archive export %s: %w", name, err)
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("archive export %s: %w", name, err)
	}
	defer file.Close()
	if _, err := io.Copy(tarWriter, file); err != nil {
		return fmt.Errorf("archive export %s: %w", name, err)
	}
	return nil
}
