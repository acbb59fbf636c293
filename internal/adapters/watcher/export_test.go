package watcher

import (
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/lsproj/internal/core/ports"
)

// ConvertEventExported exposes convertEvent for testing.
func ConvertEventExported(event fsnotify.Event) (ports.WatchEvent, bool) {
	return convertEvent(event)
}

// WatchRecursivelyExported exposes watchRecursively for testing.
func WatchRecursivelyExported(root string) []string {
	var dirs []string
	for dir := range watchRecursively(root) {
		dirs = append(dirs, dir)
	}
	return dirs
}
