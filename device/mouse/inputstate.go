package mouse

import "github.com/Alia5/keycycle/usb/hid"

// ReportSize is the length of a mouse input report without report ID.
const ReportSize = 9

// InputState represents the mouse state used to build a report.
type InputState struct {
	// Button bitfield: bit 0=Left, 1=Right, 2=Middle, 3=Back, 4=Forward
	Buttons uint8
	// Delta X/Y: signed 16-bit relative movement
	DX, DY int16
	// Wheel: signed 16-bit vertical scroll
	Wheel int16
	// Pan: signed 16-bit horizontal scroll
	Pan int16
}

// SetButton marks the buttons in mask as held or released.
func (m *InputState) SetButton(mask uint8, pressed bool) {
	if pressed {
		m.Buttons |= mask
	} else {
		m.Buttons &^= mask
	}
}

// BuildReport encodes an InputState into the 9-byte HID mouse report.
//
// Report layout (9 bytes):
//
//	Byte 0: Button bitfield (bit 0=Left, 1=Right, 2=Middle, 3=Back, 4=Forward, bits 5-7=padding)
//	Bytes 1-2: DX (int16 little-endian)
//	Bytes 3-4: DY (int16 little-endian)
//	Bytes 5-6: Wheel (int16 little-endian)
//	Bytes 7-8: Pan (int16 little-endian)
func (m *InputState) BuildReport() []byte {
	b := make([]byte, ReportSize)
	b[0] = m.Buttons & 0x1F
	b[1] = byte(m.DX)
	b[2] = byte(m.DX >> 8)
	b[3] = byte(m.DY)
	b[4] = byte(m.DY >> 8)
	b[5] = byte(m.Wheel)
	b[6] = byte(m.Wheel >> 8)
	b[7] = byte(m.Pan)
	b[8] = byte(m.Pan >> 8)
	return b
}

// Descriptor returns the HID report descriptor for the 9-byte mouse report.
func Descriptor(reportID uint8) hid.Report {
	items := []hid.Item{}
	if reportID != 0 {
		items = append(items, hid.ReportID{ID: reportID})
	}
	items = append(items,
		hid.Usage{Usage: hid.UsagePointer},
		hid.Collection{Kind: hid.CollectionPhysical, Items: []hid.Item{
			hid.UsagePage{Page: hid.UsagePageButton},
			hid.UsageMinimum{Min: 1},
			hid.UsageMaximum{Max: 5},
			hid.LogicalMinimum{Min: 0},
			hid.LogicalMaximum{Max: 1},
			hid.ReportSize{Bits: 1},
			hid.ReportCount{Count: 5},
			hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs},
			hid.ReportSize{Bits: 3},
			hid.ReportCount{Count: 1},
			hid.Input{Flags: hid.MainConst},

			hid.UsagePage{Page: hid.UsagePageGenericDesktop},
			hid.Usage{Usage: hid.UsageX},
			hid.Usage{Usage: hid.UsageY},
			hid.Usage{Usage: hid.UsageWheel},
			hid.LogicalMinimum{Min: -32768},
			hid.LogicalMaximum{Max: 32767},
			hid.ReportSize{Bits: 16},
			hid.ReportCount{Count: 3},
			hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainRel},

			hid.UsagePage{Page: hid.UsagePageConsumer},
			hid.Usage{Usage: hid.UsageACPan},
			hid.ReportCount{Count: 1},
			hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainRel},
		}},
	)
	return hid.Report{Items: []hid.Item{
		hid.UsagePage{Page: hid.UsagePageGenericDesktop},
		hid.Usage{Usage: hid.UsageMouse},
		hid.Collection{Kind: hid.CollectionApplication, Items: items},
	}}
}
