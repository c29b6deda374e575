// internal/writers/module.go
package writers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ModulesSubdir is the directory, under the output dir, that holds module files.
const ModulesSubdir = "modules"

// ModuleDir returns <outDir>/modules and creates it if needed.
func ModuleDir(outDir string) (string, error) {
	dir := filepath.Join(outDir, ModulesSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating output directory %s", dir)
	}
	return dir, nil
}

// CheckModuleID rejects ids that cannot be used as a plain file name.
func CheckModuleID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return errors.New("empty module id")
	case id == "." || id == "..":
		return errors.Errorf("module id %q is not a file name", id)
	case strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, 0):
		return errors.Errorf("module id %q contains a path separator", id)
	}
	return nil
}

// WriteModuleFile writes text to dir/<moduleID>, overwriting any existing
// file, and returns the path written.
func WriteModuleFile(dir, moduleID, text string) (string, error) {
	if err := CheckModuleID(moduleID); err != nil {
		return "", err
	}
	path := filepath.Join(dir, moduleID)

	tmp, err := os.CreateTemp(dir, "."+moduleID+".*.tmp")
	if err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.WriteString(text); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	tmp = nil
	return path, nil
}
