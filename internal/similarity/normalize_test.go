package similarity

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases",
			in:   "VPN Connection FAILED",
			want: "vpn connection failed",
		},
		{
			name: "punctuation becomes spaces",
			in:   "error: cannot connect!",
			want: "error cannot connect",
		},
		{
			name: "collapses whitespace",
			in:   "  vpn\t\tkeeps   dropping\n",
			want: "vpn keeps dropping",
		},
		{
			name: "keeps digits and underscores",
			in:   "HTTP_500 on port 8080",
			want: "http_500 on port 8080",
		},
		{
			name: "hyphenated words split",
			in:   "re-connect the wi-fi",
			want: "re connect the wi fi",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "only punctuation",
			in:   "?!...---",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"VPN Connection FAILED!!",
		"  mixed   Case  and\tTabs ",
		"already normalized text",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
