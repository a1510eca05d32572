package strands

import "strings"

// ImageFormat enumerates the image formats accepted by the Strands API.
type ImageFormat string

// Image formats.
const (
	ImageFormatPNG  ImageFormat = "png"
	ImageFormatJPEG ImageFormat = "jpeg"
	ImageFormatGIF  ImageFormat = "gif"
	ImageFormatWebP ImageFormat = "webp"
)

// DocumentFormat enumerates the document formats accepted by the Strands API.
type DocumentFormat string

// Document formats.
const (
	DocumentFormatPDF  DocumentFormat = "pdf"
	DocumentFormatCSV  DocumentFormat = "csv"
	DocumentFormatDOC  DocumentFormat = "doc"
	DocumentFormatDOCX DocumentFormat = "docx"
	DocumentFormatXLS  DocumentFormat = "xls"
	DocumentFormatXLSX DocumentFormat = "xlsx"
	DocumentFormatHTML DocumentFormat = "html"
	DocumentFormatTXT  DocumentFormat = "txt"
	DocumentFormatMD   DocumentFormat = "md"
)

// VideoFormat enumerates the video formats accepted by the Strands API.
type VideoFormat string

// Video formats.
const (
	VideoFormatFLV     VideoFormat = "flv"
	VideoFormatMKV     VideoFormat = "mkv"
	VideoFormatMOV     VideoFormat = "mov"
	VideoFormatMPEG    VideoFormat = "mpeg"
	VideoFormatMP4     VideoFormat = "mp4"
	VideoFormatThreeGP VideoFormat = "three_gp"
	VideoFormatWebM    VideoFormat = "webm"
	VideoFormatWMV     VideoFormat = "wmv"
)

var imageFormats = map[string]ImageFormat{
	"image/png":  ImageFormatPNG,
	"image/jpeg": ImageFormatJPEG,
	"image/jpg":  ImageFormatJPEG,
	"image/gif":  ImageFormatGIF,
	"image/webp": ImageFormatWebP,
}

var documentFormats = map[string]DocumentFormat{
	"application/pdf":    DocumentFormatPDF,
	"text/csv":           DocumentFormatCSV,
	"application/msword": DocumentFormatDOC,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": DocumentFormatDOCX,
	"application/vnd.ms-excel": DocumentFormatXLS,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": DocumentFormatXLSX,
	"text/html":     DocumentFormatHTML,
	"text/plain":    DocumentFormatTXT,
	"text/markdown": DocumentFormatMD,
}

var videoFormats = map[string]VideoFormat{
	"video/x-flv":      VideoFormatFLV,
	"video/x-matroska": VideoFormatMKV,
	"video/quicktime":  VideoFormatMOV,
	"video/mpeg":       VideoFormatMPEG,
	"video/mp4":        VideoFormatMP4,
	"video/3gpp":       VideoFormatThreeGP,
	"video/webm":       VideoFormatWebM,
	"video/x-ms-wmv":   VideoFormatWMV,
}

// ImageFormatFromMediaType resolves a MIME type (case-insensitive) to an
// image format. An unmapped type yields the empty format, not an error; the
// provider rejects blocks it cannot handle.
func ImageFormatFromMediaType(mediaType string) ImageFormat {
	return imageFormats[strings.ToLower(mediaType)]
}

// DocumentFormatFromMediaType resolves a MIME type (case-insensitive) to a
// document format.
func DocumentFormatFromMediaType(mediaType string) DocumentFormat {
	return documentFormats[strings.ToLower(mediaType)]
}

// VideoFormatFromMediaType resolves a MIME type (case-insensitive) to a
// video format.
func VideoFormatFromMediaType(mediaType string) VideoFormat {
	return videoFormats[strings.ToLower(mediaType)]
}
