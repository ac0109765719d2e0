package engineconfig

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Reload is one result of re-reading a watched config file.
type Reload struct {
	Config Config
	Err    error
}

// Watch re-reads path every time it is written or replaced and delivers the result on the returned
// channel until ctx is done. The directory is watched rather than the file so editors that save by
// rename are seen. Only the latest reload is kept when the reader falls behind.
func Watch(ctx context.Context, path string) (<-chan Reload, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	target := filepath.Clean(path)
	out := make(chan Reload, 1)

	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				cfg, err := Load(path)
				publish(out, Reload{Config: cfg, Err: err})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				publish(out, Reload{Config: Default(), Err: err})
			}
		}
	}()
	return out, nil
}

// publish replaces any unread reload with r.
func publish(out chan Reload, r Reload) {
	for {
		select {
		case out <- r:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
