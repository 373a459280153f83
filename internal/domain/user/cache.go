package user

import "time"

// DirectoryCache holds the tester short-info list between account creations.
// GetTesters reports the cache generation on a miss; SetTesters stores the
// list only if no Clear happened since that generation was read.
type DirectoryCache interface {
	GetTesters() ([]TesterInfo, uint64, bool)
	SetTesters(testers []TesterInfo, generation uint64, ttl time.Duration) bool
	Clear()
}

type noopDirectoryCache struct{}

func (noopDirectoryCache) GetTesters() ([]TesterInfo, uint64, bool) {
	return nil, 0, false
}

func (noopDirectoryCache) SetTesters([]TesterInfo, uint64, time.Duration) bool {
	return false
}

func (noopDirectoryCache) Clear() {}
