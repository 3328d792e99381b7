package tagging

import (
	"sort"
	"sync"

	"scmock/common"
)

// Service is an in-memory tag store keyed by resource ARN. ARNs embed the
// account and region, so a single store safely serves every registry.
type Service struct {
	mutex sync.Mutex
	tags  map[string][]common.Tag
}

// NewService creates an empty tag store
func NewService() *Service {
	return &Service{
		tags: map[string][]common.Tag{},
	}
}

// TagResource applies the given tags to the ARN. Existing keys are updated
// in place, new keys are appended in sorted order so repeated calls produce
// a stable listing.
func (s *Service) TagResource(arn string, tags map[string]string) {
	if len(tags) == 0 {
		return
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		updated := false
		for i, existing := range s.tags[arn] {
			if existing.Key == key {
				s.tags[arn][i].Value = tags[key]
				updated = true
				break
			}
		}
		if !updated {
			s.tags[arn] = append(s.tags[arn], common.Tag{Key: key, Value: tags[key]})
		}
	}
}

// UntagResource removes the given keys from the ARN. Unknown keys are ignored.
func (s *Service) UntagResource(arn string, keys []string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	remove := map[string]bool{}
	for _, key := range keys {
		remove[key] = true
	}
	remaining := []common.Tag{}
	for _, tag := range s.tags[arn] {
		if !remove[tag.Key] {
			remaining = append(remaining, tag)
		}
	}
	s.tags[arn] = remaining
}

// GetTags returns a copy of the tags on the ARN
func (s *Service) GetTags(arn string) []common.Tag {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	result := make([]common.Tag, len(s.tags[arn]))
	copy(result, s.tags[arn])
	return result
}
