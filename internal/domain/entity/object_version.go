package entity

import "time"

type ObjectVersion struct {
	Key          string
	VersionID    string
	IsLatest     bool
	Size         int64
	LastModified time.Time
}
