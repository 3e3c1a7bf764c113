/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package csvout

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/suparena/sdbsplit/errors"
)

// MergeFiles concatenates every regular file under inputDir, in name order,
// into a single file at outputPath. Part files written per split merge into
// one export this way once all workers are done.
func MergeFiles(inputDir, outputPath string) error {
	info, err := os.Stat(inputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError(inputDir)
		}
		return fmt.Errorf("failed to stat %s: %w", inputDir, err)
	}
	if !info.IsDir() {
		return errors.NewNotDirectoryError(inputDir)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", inputDir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := appendFile(out, filepath.Join(inputDir, entry.Name())); err != nil {
			out.Close()
			return err
		}
	}

	return out.Close()
}

func appendFile(out io.Writer, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", path, err)
	}
	return nil
}

// Delete removes a file or directory tree. Missing paths are reported as an
// explicit not-found error, not ignored.
func Delete(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError(path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return os.RemoveAll(path)
}
