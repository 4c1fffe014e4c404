package diagfmt

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPretty, false},
		{"pretty", FormatPretty, false},
		{"SHORT", FormatShort, false},
		{" json ", FormatJSON, false},
		{"msgpack", FormatMsgpack, false},
		{"sarif", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if !FormatMsgpack.Binary() || FormatJSON.Binary() {
		t.Error("Binary() mismatch")
	}
}
