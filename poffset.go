// Package poffset reads struct member offsets and numeric
// constants from the FFmpeg headers it is compiled against.
//
// Bindings that call into FFmpeg without cgo cannot see C
// struct layouts, so they carry one Config per library major
// version. Building this package against a given FFmpeg and
// printing NewReport produces that Config, plus the constants
// such bindings hard-code. Each FFmpeg version needs its own
// build: nothing here adapts to a library found at runtime.
package poffset

import "github.com/zimwip/poffset/report"

// NewReport collects the offsets and constants
// of the linked FFmpeg build.
func NewReport() *report.Report {
	return &report.Report{
		Version: HeaderVersion(),
		Fields:  Fields(),
		Blocks: []report.Block{
			{Sep: " = ", Constants: Constants()},
			{Sep: "=", Constants: PixelFormats()},
		},
	}
}
