package keyboard

import "github.com/Alia5/keycycle/usb/hid"

// Descriptor returns the HID report descriptor for the bitmap keyboard report.
// A non-zero reportID prefixes the report with a Report ID item, which is
// required when the keyboard shares an interface with other report kinds.
func Descriptor(reportID uint8) hid.Report {
	items := []hid.Item{}
	if reportID != 0 {
		items = append(items, hid.ReportID{ID: reportID})
	}
	items = append(items,
		// Modifier byte
		hid.UsagePage{Page: hid.UsagePageKeyboard},
		hid.UsageMinimum{Min: KeyLeftCtrl},
		hid.UsageMaximum{Max: KeyRightMeta},
		hid.LogicalMinimum{Min: 0},
		hid.LogicalMaximum{Max: 1},
		hid.ReportSize{Bits: 1},
		hid.ReportCount{Count: 8},
		hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs},

		// Reserved byte
		hid.ReportSize{Bits: 8},
		hid.ReportCount{Count: 1},
		hid.Input{Flags: hid.MainConst},

		// Key bitmap
		hid.UsagePage{Page: hid.UsagePageKeyboard},
		hid.UsageMinimum{Min: 0x00},
		hid.UsageMaximum{Max: 0xFF},
		hid.LogicalMinimum{Min: 0},
		hid.LogicalMaximum{Max: 1},
		hid.ReportSize{Bits: 1},
		hid.ReportCount{Count: 256},
		hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs},
	)
	return hid.Report{Items: []hid.Item{
		hid.UsagePage{Page: hid.UsagePageGenericDesktop},
		hid.Usage{Usage: hid.UsageKeyboard},
		hid.Collection{Kind: hid.CollectionApplication, Items: items},
	}}
}
