package freq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteList writes one "<word> <count>" line per entry.
func WriteList(w io.Writer, entries EntrySlice) error {
	bw := bufio.NewWriter(w)

	for _, e := range entries {
		bw.WriteString(e.Word)
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(e.Count))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteFile writes the list to a temporary file next to path and renames it
// into place, so path is either fully written or left untouched. An existing
// path keeps its permissions.
func WriteFile(path string, entries EntrySlice) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("freq: create %s: %w", path, err)
	}

	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err = WriteList(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("freq: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("freq: write %s: %w", path, err)
	}
	if err = os.Chmod(tmp, targetMode(path)); err != nil {
		return fmt.Errorf("freq: write %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("freq: write %s: %w", path, err)
	}

	tracer().Infof("wrote %d entries to %s", len(entries), path)

	return nil
}

// targetMode keeps the permissions of an existing regular file at path.
// A new list gets 0644 since os.CreateTemp always creates 0600.
func targetMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0o644
}
