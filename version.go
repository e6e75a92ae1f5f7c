package poffset

// #cgo pkg-config: libavformat
// #include <libavformat/avformat.h>
// #include <libavformat/version.h>
import "C"

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// HeaderVersion returns the libavformat
// version of the headers this binary was
// compiled against.
func HeaderVersion() *version.Version {
	return newVersion(
		C.LIBAVFORMAT_VERSION_MAJOR,
		C.LIBAVFORMAT_VERSION_MINOR,
		C.LIBAVFORMAT_VERSION_MICRO)
}

// LinkedVersion returns the version of the
// libavformat shared library loaded at runtime.
func LinkedVersion() *version.Version {
	v := uint(C.avformat_version())

	return newVersion(v>>16, (v>>8)&0xff, v&0xff)
}

func newVersion(major, minor, micro uint) *version.Version {
	return version.Must(version.NewVersion(
		fmt.Sprintf("%d.%d.%d", major, minor, micro)))
}
