package colormode

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "day", want: ModeDay},
		{input: "night", want: ModeNight},
		{input: "auto", want: ModeAuto},
		{input: "", wantErr: true},
		{input: "dark", wantErr: true},
		{input: "Day", wantErr: true},
		{input: "dusk", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMode(%q) accepted an invalid mode", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name         string
		mode         Mode
		prefersDark  bool
		dayScheme    string
		nightScheme  string
		wantPolarity Polarity
		wantScheme   string
	}{
		{
			name:         "day mode ignores a dark ambient signal",
			mode:         ModeDay,
			prefersDark:  true,
			wantPolarity: PolarityDay,
			wantScheme:   "light",
		},
		{
			name:         "night mode ignores a light ambient signal",
			mode:         ModeNight,
			prefersDark:  false,
			wantPolarity: PolarityNight,
			wantScheme:   "dark",
		},
		{
			name:         "auto with light preference resolves to day",
			mode:         ModeAuto,
			prefersDark:  false,
			wantPolarity: PolarityDay,
			wantScheme:   "light",
		},
		{
			name:         "auto with dark preference resolves to night",
			mode:         ModeAuto,
			prefersDark:  true,
			wantPolarity: PolarityNight,
			wantScheme:   "dark",
		},
		{
			name:         "day scheme override beats the light default",
			mode:         ModeDay,
			dayScheme:    "dark",
			wantPolarity: PolarityDay,
			wantScheme:   "dark",
		},
		{
			name:         "night scheme override beats the dark default",
			mode:         ModeNight,
			nightScheme:  "dark_dimmed",
			wantPolarity: PolarityNight,
			wantScheme:   "dark_dimmed",
		},
		{
			name:         "night scheme override is inert while polarity is day",
			mode:         ModeAuto,
			prefersDark:  false,
			nightScheme:  "dark_dimmed",
			wantPolarity: PolarityDay,
			wantScheme:   "light",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.mode, tt.prefersDark, tt.dayScheme, tt.nightScheme)
			if got.Polarity != tt.wantPolarity {
				t.Errorf("polarity = %q, want %q", got.Polarity, tt.wantPolarity)
			}
			if got.Scheme != tt.wantScheme {
				t.Errorf("scheme = %q, want %q", got.Scheme, tt.wantScheme)
			}
			if got.Mode != tt.mode {
				t.Errorf("mode = %q, want %q", got.Mode, tt.mode)
			}
		})
	}
}
