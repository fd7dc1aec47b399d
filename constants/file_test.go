package constants

import "testing"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		mimeType string
		want     FileFormat
	}{
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Spreadsheet},
		{"application/vnd.ms-excel", Spreadsheet},
		{"application/msexcel", Spreadsheet},
		{"application/x-excel", Spreadsheet},
		{"application/x-msexcel", Spreadsheet},
		{"application/vnd.oasis.opendocument.spreadsheet", Spreadsheet},
		{"image/jpeg", Image},
		{"image/png", Image},
		{"image/webp", Image},
		{"image/heic", Image},
		{"image/heif", Image},
		{"application/pdf", Document},
		{"APPLICATION/PDF", Document},
		{"video/mp4", Unsupported},
		{"text/csv", Unsupported},
		{"text/plain", Unsupported},
		{"image/gif", Unsupported},
		{"", Unsupported},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.mimeType); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.mimeType, got, tt.want)
		}
	}
}

func TestUploadAllowed(t *testing.T) {
	// The upload list intentionally differs from the pipeline list.
	allowed := []string{"text/csv", "text/plain", "image/gif", "image/svg+xml", "application/pdf", "image/png"}
	for _, mt := range allowed {
		if !UploadAllowed(mt) {
			t.Errorf("UploadAllowed(%q) = false, want true", mt)
		}
	}
	rejected := []string{"image/heic", "image/heif", "application/vnd.oasis.opendocument.spreadsheet", "video/mp4"}
	for _, mt := range rejected {
		if UploadAllowed(mt) {
			t.Errorf("UploadAllowed(%q) = true, want false", mt)
		}
	}
}

func TestMIMEFromExt(t *testing.T) {
	if got := MIMEFromExt(".XLSX"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("MIMEFromExt(.XLSX) = %q", got)
	}
	if got := MIMEFromExt("pdf"); got != "application/pdf" {
		t.Errorf("MIMEFromExt(pdf) = %q", got)
	}
	if got := MIMEFromExt(".mp4"); got != "" {
		t.Errorf("MIMEFromExt(.mp4) = %q, want empty", got)
	}
}

func TestRecordKindIDPrefix(t *testing.T) {
	tests := []struct {
		kind RecordKind
		want string
	}{
		{KindInvoice, "inv"},
		{KindProduct, "prod"},
		{KindCustomer, "cust"},
	}
	for _, tt := range tests {
		if got := tt.kind.IDPrefix(); got != tt.want {
			t.Errorf("%s.IDPrefix() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
