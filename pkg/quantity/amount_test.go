package quantity

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "integer", in: "2", want: 2},
		{name: "decimal", in: "1.5", want: 1.5},
		{name: "fraction", in: "3/4", want: 0.75},
		{name: "fraction of decimals", in: "1.5/3", want: 0.5},
		{name: "words fail", in: "two", wantErr: true},
		{name: "empty fails", in: "", wantErr: true},
		{name: "bad numerator", in: "x/2", wantErr: true},
		{name: "bad denominator", in: "2/x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{1.5, "1.5"},
		{0.25, "0.25"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
