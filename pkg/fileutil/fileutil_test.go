package fileutil

import "testing"

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name", "report.pdf", true},
		{"name with spaces", "quarterly report.pdf", true},
		{"unicode name", "보고서.pdf", true},
		{"no extension", "README", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"tab and newline only", "\t\n", false},
		{"less than", "a<b.txt", false},
		{"greater than", "a>b.txt", false},
		{"colon", "a:b.txt", false},
		{"double quote", `a"b.txt`, false},
		{"forward slash", "a/b.txt", false},
		{"backslash", `a\b.txt`, false},
		{"pipe", "a|b.txt", false},
		{"question mark", "a?b.txt", false},
		{"asterisk", "a*b.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.input); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMIMEType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"pdf", "report.pdf", "application/pdf"},
		{"uppercase extension", "REPORT.PDF", "application/pdf"},
		{"mixed case extension", "photo.JpG", "image/jpeg"},
		{"docx", "letter.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"xlsx", "numbers.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"csv", "data.csv", "text/csv"},
		{"plain text", "notes.txt", "text/plain"},
		{"jpeg variant", "photo.jpeg", "image/jpeg"},
		{"png", "logo.png", "image/png"},
		{"mp4", "clip.mp4", "video/mp4"},
		{"mp3", "song.mp3", "audio/mpeg"},
		{"zip", "bundle.zip", "application/zip"},
		{"json", "payload.json", "application/json"},
		{"unknown extension", "binary.xyz", MIMEOctetStream},
		{"no extension", "Makefile", MIMEOctetStream},
		{"trailing dot", "weird.", MIMEOctetStream},
		{"empty name", "", MIMEOctetStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MIMEType(tt.input); got != tt.want {
				t.Errorf("MIMEType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "0 Bytes"},
		{"negative clamps to zero", -5, "0 Bytes"},
		{"one byte", 1, "1 Bytes"},
		{"under one KB", 1023, "1023 Bytes"},
		{"exactly one KB", 1024, "1 KB"},
		{"one and a half KB", 1536, "1.5 KB"},
		{"two decimals", 1126, "1.1 KB"},
		{"exactly one MB", 1024 * 1024, "1 MB"},
		{"exactly one GB", 1024 * 1024 * 1024, "1 GB"},
		{"exactly one TB", 1024 * 1024 * 1024 * 1024, "1 TB"},
		{"fractional MB", 5 * 1024 * 1024 / 2, "2.5 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.input); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatSizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"numeric string matches numeric", "1536", "1.5 KB"},
		{"zero string", "0", "0 Bytes"},
		{"padded string", " 1024 ", "1 KB"},
		{"garbage treated as zero", "abc", "0 Bytes"},
		{"empty treated as zero", "", "0 Bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSizeString(tt.input); got != tt.want {
				t.Errorf("FormatSizeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
