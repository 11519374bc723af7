package vdev

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Alia5/keycycle/device/keyboard"
	"github.com/Alia5/keycycle/device/mouse"
	"github.com/Alia5/keycycle/internal/log"
	"github.com/Alia5/keycycle/usb/hid"
)

// Sink receives device announcements and input reports.
type Sink interface {
	// Announce is called once per device with its report descriptor.
	Announce(id DeviceID, descriptor hid.Data) error
	// Report is called for every state change of a device. Reports of main
	// devices are prefixed with their report ID.
	Report(id DeviceID, report []byte) error
}

type device struct {
	id DeviceID
	kb keyboard.InputState
	ms mouse.InputState
}

func (d *device) descriptor() hid.Report {
	switch d.id.Kind {
	case KindKeyboard:
		return keyboard.Descriptor(0)
	case KindMouse:
		return mouse.Descriptor(0)
	default:
		return hid.Join(keyboard.Descriptor(ReportIDKeyboard), mouse.Descriptor(ReportIDMouse))
	}
}

func (d *device) keyboardReport() []byte {
	r := d.kb.BuildReport()
	if d.id.Kind == KindMain {
		return append([]byte{ReportIDKeyboard}, r...)
	}
	return r
}

func (d *device) mouseReport() []byte {
	r := d.ms.BuildReport()
	if d.id.Kind == KindMain {
		return append([]byte{ReportIDMouse}, r...)
	}
	return r
}

// Hub owns the virtual devices of all slots.
//
// A Hub is safe for concurrent use; reports are handed to the sink in the
// order the state changes happened.
type Hub struct {
	mu      sync.Mutex
	devices map[DeviceID]*device
	sink    Sink
	logger  *slog.Logger
	metrics *Metrics
}

// NewHub creates a Hub writing to sink. metrics may be nil.
func NewHub(sink Sink, logger *slog.Logger, metrics *Metrics) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		devices: make(map[DeviceID]*device),
		sink:    sink,
		logger:  logger,
		metrics: metrics,
	}
}

// Open creates the device id if it does not exist yet and announces its
// report descriptor. Opening an existing device is a no-op.
func (h *Hub) Open(id DeviceID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.devices[id]; ok {
		return nil
	}
	d := &device{id: id}
	desc, err := d.descriptor().Bytes()
	if err != nil {
		return fmt.Errorf("build descriptor for %s: %w", id, err)
	}
	if err := h.sink.Announce(id, desc); err != nil {
		return fmt.Errorf("announce %s: %w", id, err)
	}
	h.devices[id] = d
	h.logger.Debug("virtual device created", "device", id.String(), "descriptorLen", len(desc))
	return nil
}

// Key presses or releases a keyboard usage on device id.
func (h *Hub) Key(id DeviceID, code uint8, pressed bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	d := h.lookup(id)
	if d == nil {
		return
	}
	if id.Kind == KindMouse {
		h.logger.Error("keyboard event on mouse device", "device", id.String(), "key", code)
		return
	}
	d.kb.Set(code, pressed)
	h.write(d, KindKeyboard, pressed, d.keyboardReport())
}

// Button presses or releases the mouse buttons in mask on device id.
func (h *Hub) Button(id DeviceID, mask uint8, pressed bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	d := h.lookup(id)
	if d == nil {
		return
	}
	if id.Kind == KindKeyboard {
		h.logger.Error("mouse event on keyboard device", "device", id.String(), "button", mask)
		return
	}
	d.ms.SetButton(mask, pressed)
	h.write(d, KindMouse, pressed, d.mouseReport())
}

// ReleaseAll clears every held key and button and sends the resulting
// reports. Devices with nothing held are left alone.
func (h *Hub) ReleaseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, id := range h.sortedIDs() {
		d := h.devices[id]
		if d.kb != (keyboard.InputState{}) {
			d.kb = keyboard.Release()
			h.write(d, KindKeyboard, false, d.keyboardReport())
		}
		if d.ms.Buttons != 0 {
			d.ms.Buttons = 0
			h.write(d, KindMouse, false, d.mouseReport())
		}
	}
}

// Devices lists all opened devices ordered by slot and kind.
func (h *Hub) Devices() []DeviceID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sortedIDs()
}

// KeyboardState returns a copy of the keyboard state of device id.
func (h *Hub) KeyboardState(id DeviceID) (keyboard.InputState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, ok := h.devices[id]
	if !ok {
		return keyboard.InputState{}, false
	}
	return d.kb, true
}

// MouseState returns a copy of the mouse state of device id.
func (h *Hub) MouseState(id DeviceID) (mouse.InputState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, ok := h.devices[id]
	if !ok {
		return mouse.InputState{}, false
	}
	return d.ms, true
}

func (h *Hub) lookup(id DeviceID) *device {
	d, ok := h.devices[id]
	if !ok {
		h.logger.Error("event for unopened device dropped", "device", id.String())
		return nil
	}
	return d
}

func (h *Hub) write(d *device, kind Kind, pressed bool, report []byte) {
	h.logger.Log(context.Background(), log.LevelTrace, "report", "device", d.id.String(), "data", fmt.Sprintf("%x", report))
	if err := h.sink.Report(d.id, report); err != nil {
		h.logger.Error("failed to write report", "device", d.id.String(), "error", err)
		h.metrics.writeError()
		return
	}
	h.metrics.report(kind, pressed)
}

func (h *Hub) sortedIDs() []DeviceID {
	ids := make([]DeviceID, 0, len(h.devices))
	for id := range h.devices {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b DeviceID) int {
		if c := cmp.Compare(a.Slot, b.Slot); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return ids
}
