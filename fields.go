package poffset

// #cgo pkg-config: libavformat libavcodec libavutil
// #include <libavcodec/avcodec.h>
// #include <libavformat/avformat.h>
// #include <libavformat/avio.h>
// #include <libavutil/frame.h>
import "C"

import (
	"unsafe"

	"github.com/zimwip/poffset/report"
)

// Fields returns the offsets of the struct
// members the consumer reaches into without
// a C compiler.
//
// The instances below are never initialized
// nor read: only their layout matters.
func Fields() []report.Field {
	var (
		stream C.AVStream
		ioctx  C.AVIOContext
		frame  C.AVFrame
	)

	return []report.Field{
		{
			Struct:     "AVStream",
			Member:     "codecpar",
			Key:        "AVStream_CodecPar_Offset",
			Offset:     unsafe.Offsetof(stream.codecpar),
			StructSize: unsafe.Sizeof(stream),
		},
		{
			Struct:     "AVIOContext",
			Member:     "error",
			Key:        "AVIOContext_Error_Offset",
			Offset:     unsafe.Offsetof(ioctx.error),
			StructSize: unsafe.Sizeof(ioctx),
		},
		{
			Struct:     "AVFrame",
			Member:     "best_effort_timestamp",
			Key:        "AVFrame_BestEffortTimestamp_Offset",
			Offset:     unsafe.Offsetof(frame.best_effort_timestamp),
			StructSize: unsafe.Sizeof(frame),
		},
	}
}
