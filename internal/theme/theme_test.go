package theme

import "testing"

func TestGet(t *testing.T) {
	th := Theme{
		"colors": map[string]any{
			"text": "black",
			"canvas": map[string]any{
				"default": "white",
			},
		},
		"space": map[string]any{"sm": 2},
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{name: "top-level nested lookup", path: "colors.text", want: "black", wantOK: true},
		{name: "deep lookup", path: "colors.canvas.default", want: "white", wantOK: true},
		{name: "non-string scalar", path: "space.sm", want: 2, wantOK: true},
		{name: "missing leaf", path: "colors.background", wantOK: false},
		{name: "missing branch", path: "typography.fontSize", wantOK: false},
		{name: "path through a scalar", path: "colors.text.shade", wantOK: false},
		{name: "empty path", path: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := th.Get(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Get(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestGetString(t *testing.T) {
	th := Theme{"colors": map[string]any{"text": "black"}, "space": map[string]any{"sm": 2}}

	if s, ok := th.GetString("colors.text"); !ok || s != "black" {
		t.Errorf("GetString(colors.text) = %q, %v", s, ok)
	}
	if _, ok := th.GetString("space.sm"); ok {
		t.Error("GetString(space.sm) should report false for a non-string token")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := Theme{"colors": map[string]any{"text": "black"}}
	clone := original.Clone()

	clone["colors"].(map[string]any)["text"] = "white"

	if original["colors"].(map[string]any)["text"] != "black" {
		t.Errorf("mutating the clone leaked into the original: %#v", original)
	}
}
