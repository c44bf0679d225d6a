package utils

import (
	"os"
	"sync"
)

var (
	hostInstance string
	hostOnce     sync.Once
)

// GetHost caches the hostname for log enrichment.
func GetHost() string {
	hostOnce.Do(func() {
		h, err := os.Hostname()
		if err != nil {
			hostInstance = "unknown"
		} else {
			hostInstance = h
		}
	})

	return hostInstance
}
