package liststore

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch rebroadcasts the store whenever another process rewrites its backing
// file, so this process's subscribers pick up the change. Writes from two
// processes are not coordinated beyond last-writer-wins.
//
// The store's directory is watched rather than the file itself, because the
// file may not exist yet and rewrites can replace the inode.
func Watch(ctx context.Context, s *Store) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(s.Path())); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		target := filepath.Clean(s.Path())
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
					s.Rebroadcast()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("liststore %s: watch: %v", s.Name(), err)
			}
		}
	}()

	return func() {
		_ = watcher.Close()
		<-done
	}, nil
}
