// Package testing provides fakes shared by keycycle's tests.
package testing

import (
	"sync"
	"testing"

	"github.com/Alia5/keycycle/device/keyboard"
	"github.com/Alia5/keycycle/internal/log"
	"github.com/Alia5/keycycle/usb/hid"
	"github.com/Alia5/keycycle/vdev"
)

// Report is one report captured by a RecordingSink.
type Report struct {
	Device vdev.DeviceID
	Data   []byte
}

// RecordingSink records everything a Hub writes. Setting Fail makes every
// Report call fail with that error.
type RecordingSink struct {
	mu        sync.Mutex
	announced map[vdev.DeviceID]hid.Data
	reports   []Report
	Fail      error
}

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{announced: make(map[vdev.DeviceID]hid.Data)}
}

func (s *RecordingSink) Announce(id vdev.DeviceID, descriptor hid.Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announced[id] = descriptor
	return nil
}

func (s *RecordingSink) Report(id vdev.DeviceID, report []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	s.reports = append(s.reports, Report{Device: id, Data: append([]byte(nil), report...)})
	return nil
}

// Announced returns the descriptor announced for id.
func (s *RecordingSink) Announced(id vdev.DeviceID) (hid.Data, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.announced[id]
	return d, ok
}

// Reports returns all reports recorded so far.
func (s *RecordingSink) Reports() []Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Report(nil), s.reports...)
}

// Take returns the recorded reports and forgets them.
func (s *RecordingSink) Take() []Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.reports
	s.reports = nil
	return r
}

// NewHub returns a Hub that records into a fresh RecordingSink and logs nothing.
func NewHub(t *testing.T) (*vdev.Hub, *RecordingSink) {
	t.Helper()
	sink := NewRecordingSink()
	return vdev.NewHub(sink, log.Discard(), nil), sink
}

// Keys returns a keyboard state with the given usages held.
func Keys(codes ...uint8) keyboard.InputState {
	var s keyboard.InputState
	for _, c := range codes {
		s.Set(c, true)
	}
	return s
}
