package models

import "time"

// DiscoveredFile is one regular file indexed by a scan. Path is relative to
// the scan root and always slash-separated.
type DiscoveredFile struct {
	Path    string
	Name    string
	Ext     string
	Size    int64
	ModTime time.Time
}
