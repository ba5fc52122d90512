package ocr

import (
	"testing"
)

func TestSwitch_UnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"True", true, false},
		{"False", false, false},
		{"true", false, true},
		{"TRUE", false, true},
		{"false", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"", false, true},
		{" True", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var sw Switch
			err := sw.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				if err == nil {
					t.Errorf("UnmarshalText(%q) should fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalText(%q) failed: %v", tt.in, err)
			}
			if sw.On != tt.want {
				t.Errorf("UnmarshalText(%q).On = %v, want %v", tt.in, sw.On, tt.want)
			}
		})
	}
}

func TestSwitch_String(t *testing.T) {
	if s := (Switch{On: true}).String(); s != "True" {
		t.Errorf("got %s, want True", s)
	}
	if s := (Switch{}).String(); s != "False" {
		t.Errorf("got %s, want False", s)
	}

	b, err := Switch{On: true}.MarshalText()
	if err != nil || string(b) != "True" {
		t.Errorf("MarshalText: got %q, %v", b, err)
	}
}
