package poffset

// #cgo pkg-config: libavformat libavcodec libavutil libswscale
// #include <errno.h>
// #include <stdint.h>
// #include <libavutil/error.h>
// #include <libavutil/channel_layout.h>
// #include <libavutil/pixfmt.h>
// #include <libavutil/samplefmt.h>
// #include <libswscale/swscale.h>
//
// // Values cgo can't evaluate from
// // macros are expanded here.
// static int64_t errorAgain(void) { return AVERROR(EAGAIN); }
// static int64_t errorEndOfFile(void) { return AVERROR_EOF; }
// static int64_t channelLayoutStereo(void) { return (int64_t)AV_CH_LAYOUT_STEREO; }
// static int64_t scaleBilinear(void) { return SWS_BILINEAR; }
import "C"

import "github.com/zimwip/poffset/report"

// Column widths of the second block.
// The consumer's generated file aligns
// the two error codes apart from the rest.
const (
	errorColumn  = 14
	formatColumn = 19
)

// Constants returns the error codes, the
// stereo channel layout, the S16 sample
// format, the RGBA pixel format and the
// bilinear scaler flag, in print order.
func Constants() []report.Constant {
	return []report.Constant{
		{Name: "AVERROR_EAGAIN", Value: int64(C.errorAgain()), Indent: " ", Width: errorColumn},
		{Name: "AVERROR_EOF", Value: int64(C.errorEndOfFile()), Indent: " ", Width: errorColumn},
		{Name: "AV_CH_LAYOUT_STEREO", Value: int64(C.channelLayoutStereo()), Indent: " ", Width: formatColumn},
		{Name: "AV_SAMPLE_FMT_S16", Value: int64(C.AV_SAMPLE_FMT_S16), Indent: " ", Width: formatColumn},
		// No leading space here. The consumer expects it that way.
		{Name: "AV_PIX_FMT_RGBA", Value: int64(C.AV_PIX_FMT_RGBA), Width: formatColumn},
		{Name: "SWS_BILINEAR", Value: int64(C.scaleBilinear()), Indent: " ", Width: formatColumn},
	}
}

// PixelFormats returns the planar YUV
// formats for each chroma subsampling
// the consumer converts from.
func PixelFormats() []report.Constant {
	return []report.Constant{
		{Name: "AV_PIX_FMT_YUV420P", Value: int64(C.AV_PIX_FMT_YUV420P)},
		{Name: "AV_PIX_FMT_YUV422P", Value: int64(C.AV_PIX_FMT_YUV422P)},
		{Name: "AV_PIX_FMT_YUV444P", Value: int64(C.AV_PIX_FMT_YUV444P)},
		{Name: "AV_PIX_FMT_YUV440P", Value: int64(C.AV_PIX_FMT_YUV440P)},
		{Name: "AV_PIX_FMT_YUV411P", Value: int64(C.AV_PIX_FMT_YUV411P)},
		{Name: "AV_PIX_FMT_YUV410P", Value: int64(C.AV_PIX_FMT_YUV410P)},
	}
}
