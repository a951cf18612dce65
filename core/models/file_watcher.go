package models

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 500 * time.Millisecond

type FileWatcher struct {
	Watcher *fsnotify.Watcher
	RootDir string
	// ExcludePaths are doublestar patterns or plain directories relative to RootDir.
	ExcludePaths  []string
	Debounce      time.Duration
	DebounceTimer *time.Timer
	Mutex         sync.Mutex
	OnStart       func() error
	OnChange      func() error
	OnClose       func() error
}

func NewFileWatcher(rootDir string, excludePaths []string, debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &FileWatcher{
		Watcher:      watcher,
		RootDir:      rootDir,
		ExcludePaths: excludePaths,
		Debounce:     debounce,
		OnStart:      func() error { return fmt.Errorf("OnStart not set") },
		OnChange:     func() error { return fmt.Errorf("OnChange not set") },
		OnClose:      func() error { return fmt.Errorf("OnClose not set") },
	}, nil
}

func (fw *FileWatcher) AddOnStartFunc(onStart func() error) {
	fw.OnStart = onStart
}

func (fw *FileWatcher) AddOnChangeFunc(onChange func() error) {
	fw.OnChange = onChange
}

func (fw *FileWatcher) AddOnCloseFunc(onClose func() error) {
	fw.OnClose = onClose
}
