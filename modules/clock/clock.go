// Package clock declares the Clock.Service service, a trivial wall-clock
// source.
package clock

import (
	"time"

	"github.com/vk/sectreg/registry"
)

// Service reports the current time.
type Service struct{}

// Now returns the current wall-clock time in UTC.
func (s *Service) Now() time.Time {
	return time.Now().UTC()
}

var _ = registry.RegisterServiceType[Service]("Clock", "Service")
