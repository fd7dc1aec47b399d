package constants

import "strings"

// FileFormat is the coarse format class the extraction pipeline branches on.
type FileFormat string

const (
	Spreadsheet FileFormat = "SPREADSHEET"
	Image       FileFormat = "IMAGE"
	Document    FileFormat = "DOCUMENT" // PDF
	Unsupported FileFormat = "UNSUPPORTED"
)

// spreadsheetMIMETypes covers xlsx/xls plus the vendor aliases browsers
// report for older Excel files, and ODS.
var spreadsheetMIMETypes = map[string]struct{}{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"application/vnd.ms-excel":                                          {},
	"application/msexcel":                                               {},
	"application/x-excel":                                               {},
	"application/x-msexcel":                                             {},
	"application/vnd.oasis.opendocument.spreadsheet":                    {},
}

var imageMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/heic": {},
	"image/heif": {},
}

const PDFMIMEType = "application/pdf"

// DetectFormat maps a declared media type to its format class. It is a fixed
// allow-list; anything unknown is Unsupported and must short-circuit the
// pipeline before any byte-level work.
func DetectFormat(mimeType string) FileFormat {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if _, ok := spreadsheetMIMETypes[mt]; ok {
		return Spreadsheet
	}
	if _, ok := imageMIMETypes[mt]; ok {
		return Image
	}
	if mt == PDFMIMEType {
		return Document
	}
	return Unsupported
}

// UploadMIMETypes is the upload-surface allow-list checked before a file is
// handed to the pipeline. It intentionally disagrees with the pipeline's own
// allow-list (it accepts text/csv, text/plain, gif and svg but not heic/heif
// or ods); the two lists are kept separate until an owner decides which one
// is authoritative.
var UploadMIMETypes = map[string]struct{}{
	"application/pdf": {},
	"text/plain":      {},
	"text/csv":        {},
	"application/vnd.ms-excel":                                          {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"image/jpeg":    {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
}

// UploadAllowed reports whether the upload surface accepts the media type.
func UploadAllowed(mimeType string) bool {
	_, ok := UploadMIMETypes[strings.ToLower(strings.TrimSpace(mimeType))]
	return ok
}

// extToMIME backs MIME inference for the directory batch path, where there is
// no browser to declare a media type.
var extToMIME = map[string]string{
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xls":  "application/vnd.ms-excel",
	"ods":  "application/vnd.oasis.opendocument.spreadsheet",
	"pdf":  PDFMIMEType,
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
	"heic": "image/heic",
	"heif": "image/heif",
}

// MIMEFromExt returns the media type for a file extension, or "" if unknown.
func MIMEFromExt(ext string) string {
	return extToMIME[NormalizeExt(ext)]
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
