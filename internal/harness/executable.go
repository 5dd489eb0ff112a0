// Package harness runs literal-input scenarios against the public strmath
// operations and reports failures as readable error chains.
package harness

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"strmath/internal/errtrace"
)

// Executable lookup errors.
var (
	ErrExecutableUnset = errors.New("executable file is not set")
	ErrEmptyPath       = errors.New("executable path is empty")
)

// Executable remembers where the running binary lives, for diagnostics.
type Executable struct {
	mu   sync.RWMutex
	file string
	dir  string
}

// NewExecutable creates an empty locator; call Discover or SetExecutableFile.
func NewExecutable() *Executable {
	return &Executable{}
}

// Discover records the path of the current process's binary.
func (e *Executable) Discover() error {
	path, err := os.Executable()
	if err != nil {
		return errtrace.Here(fmt.Errorf("failed to locate executable: %w", err))
	}

	return e.SetExecutableFile(path)
}

// SetExecutableFile records path and derives its directory.
func (e *Executable) SetExecutableFile(path string) error {
	if path == "" {
		return errtrace.Here(ErrEmptyPath)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.file = path
	e.dir = filepath.Dir(path)

	return nil
}

// ExecutableFile returns the recorded binary path.
func (e *Executable) ExecutableFile() (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.file == "" {
		return "", errtrace.Here(ErrExecutableUnset)
	}

	return e.file, nil
}

// ExecutableDir returns the directory containing the recorded binary.
func (e *Executable) ExecutableDir() (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.file == "" {
		return "", errtrace.Here(ErrExecutableUnset)
	}

	return e.dir, nil
}
