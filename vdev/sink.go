package vdev

import (
	"fmt"
	"io"
	"sync"

	"github.com/Alia5/keycycle/usb/hid"
)

// WriterSink writes one text line per announcement and report:
//
//	device 0/keyboard 05010906a101...
//	report 0/keyboard 00003a00...
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a Sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Announce(id DeviceID, descriptor hid.Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "device %s %x\n", id, []byte(descriptor))
	return err
}

func (s *WriterSink) Report(id DeviceID, report []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "report %s %x\n", id, report)
	return err
}
