package wlog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Logger is something that can print, using Logf, a format string
type Logger interface {
	Logf(format string, v ...any)
}

// subsystemLogger handles only one file out of all that are opened by its AppLogger
type subsystemLogger struct {
	name string
	app  *AppLogger
}

func (s *subsystemLogger) Logf(format string, v ...any) {
	s.app.logf(s.name, format, v...)
}

// AppLogger writes to one log file per registered subsystem.
// It's safe to share amongst goroutines since it has an internal lock.
type AppLogger struct {
	dir string

	fileMapper map[string]*os.File    // Maps a subsystem name to an OS file (used only to be able to deallocate it later)
	logMapper  map[string]*log.Logger // Maps a subsystem name to the corresponding logger

	lock    sync.RWMutex
	enabled bool
}

// NewAppLogger creates an AppLogger writing its files under dir.
// When logging is disabled the subsystem loggers still hand out valid
// Loggers, they just drop everything.
func NewAppLogger(dir string, enabled bool) (*AppLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &AppLogger{
		dir:        dir,
		fileMapper: make(map[string]*os.File),
		logMapper:  make(map[string]*log.Logger),
		enabled:    enabled,
	}, nil
}

// RegisterSubsystem registers a new subsystem, returning a Logger that writes to <dir>/<name>.log.
// If successful, error is nil
func (a *AppLogger) RegisterSubsystem(name string) (Logger, error) {
	file, err := os.OpenFile(filepath.Join(a.dir, name+".log"), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return nil, err
	}

	a.lock.Lock()
	defer a.lock.Unlock()
	a.logMapper[name] = log.New(file, fmt.Sprintf("[%s]: ", name), log.Ldate|log.Ltime)
	a.fileMapper[name] = file
	return &subsystemLogger{name, a}, nil
}

func (a *AppLogger) logf(name, format string, v ...any) {
	a.lock.RLock()
	logger, ok := a.logMapper[name]
	enabled := a.enabled
	a.lock.RUnlock()

	if !ok || !enabled {
		return
	}
	logger.Printf(format, v...)
}

// CloseAll closes all the open files that the subsystem loggers are using
func (a *AppLogger) CloseAll() {
	a.lock.Lock()
	defer a.lock.Unlock()

	for _, file := range a.fileMapper {
		file.Sync()
		file.Close()
	}
	clear(a.fileMapper)
	clear(a.logMapper)
}

type discardLogger struct{}

func (discardLogger) Logf(string, ...any) {}

// Discard returns a Logger that drops everything. Handy in tests.
func Discard() Logger { return discardLogger{} }
