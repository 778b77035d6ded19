package utils

import "testing"

func TestPhoneDigits(t *testing.T) {
	cases := map[string]string{
		"+1-234-5678":     "12345678",
		"(072) 555-01-99": "0725550199",
		"":                "",
		"ext. 12":         "12",
	}
	for in, want := range cases {
		if got := PhoneDigits(in); got != want {
			t.Errorf("PhoneDigits(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPhonesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "partial query", a: "+1-234-5678", b: "1234", want: true},
		{name: "partial stored", a: "1234", b: "+1-234-5678-99", want: true},
		{name: "identical after cleanup", a: "(072) 5550199", b: "0725550199", want: true},
		{name: "no overlap", a: "0725550199", b: "999", want: false},
		{name: "empty query", a: "0725550199", b: "", want: false},
		{name: "both empty", a: "", b: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhonesOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("PhonesOverlap(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+254712345678", true},
		{"0712 345 678", true},
		{"(072) 123-4567", true},
		{"12345", false},
		{"+2547123456789012345", false},
		{"07a2345678", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
