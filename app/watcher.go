package app

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports file changes, coalescing the duplicate events the
// backend fires for one logical write.
type Watcher interface {
	Watch(path string) error
	Unwatch(path string) error
	Events() <-chan fsnotify.Event
	Errors() <-chan error
	Close() error
}

type watcherImpl struct {
	w      *fsnotify.Watcher
	events chan fsnotify.Event
	errors chan error
	done   chan struct{}
}

// NewWatcher builds a debounced filesystem watcher.
func NewWatcher() (Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("app: watcher: %w", err)
	}
	wi := &watcherImpl{
		w:      w,
		events: make(chan fsnotify.Event),
		errors: make(chan error),
		done:   make(chan struct{}),
	}
	go wi.eventLoop()
	return wi, nil
}

// debounceDuration batches events belonging to one save. Editors and the
// backend both fire multiple events per write, see
// https://github.com/fsnotify/fsnotify/issues/122
const debounceDuration = 100 * time.Millisecond

func (wi *watcherImpl) eventLoop() {
	defer func() {
		close(wi.events)
		close(wi.errors)
	}()
	timer := time.NewTimer(debounceDuration)
	<-timer.C // drain the initial firing
	pending := make(map[fsnotify.Event]bool)
	for {
		select {
		case <-wi.done:
			return
		case ev, ok := <-wi.w.Events:
			if !ok {
				return
			}
			pending[ev] = true
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounceDuration)
		case err, ok := <-wi.w.Errors:
			if !ok {
				return
			}
			select {
			case wi.errors <- err:
			case <-wi.done:
			}
		case <-timer.C:
			for ev := range pending {
				select {
				case wi.events <- ev:
				case <-wi.done:
				}
				delete(pending, ev)
			}
		}
	}
}

func (wi *watcherImpl) Watch(path string) error {
	if err := wi.w.Add(path); err != nil {
		return fmt.Errorf("app: watch %s: %w", path, err)
	}
	return nil
}

func (wi *watcherImpl) Unwatch(path string) error {
	if err := wi.w.Remove(path); err != nil {
		return fmt.Errorf("app: unwatch %s: %w", path, err)
	}
	return nil
}

func (wi *watcherImpl) Events() <-chan fsnotify.Event { return wi.events }
func (wi *watcherImpl) Errors() <-chan error          { return wi.errors }

func (wi *watcherImpl) Close() error {
	select {
	case <-wi.done:
	default:
		close(wi.done)
	}
	return wi.w.Close()
}
