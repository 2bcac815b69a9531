package artwork

import (
	"errors"
	"testing"
)

type failingResolver struct{}

func (failingResolver) Resolve(string) (Art, error) {
	return Art{}, errors.New("boom")
}

func TestLabelResolver(t *testing.T) {
	tests := []struct {
		ref    string
		source string
		name   string
		err    bool
	}{
		{"https://upload.wikimedia.org/wikipedia/en/e/ed/Alan_Wake_2_box_art.jpg", "upload.wikimedia.org", "Alan_Wake_2_box_art", false},
		{"http://www.example.com/covers/x.png", "example.com", "x", false},
		{"https://example.com", "example.com", "", false},
		{"", "", "", true},
		{"placeholder", "", "", true},
		{"ftp://example.com/a.png", "", "", true},
		{"https://bad host/%zz", "", "", true},
	}

	var r LabelResolver
	for _, tt := range tests {
		art, err := r.Resolve(tt.ref)
		if (err != nil) != tt.err {
			t.Errorf("Resolve(%q) error = %v, wantErr %v", tt.ref, err, tt.err)
			continue
		}
		if err != nil {
			continue
		}
		if art.Source != tt.source || art.Name != tt.name || art.Placeholder {
			t.Errorf("Resolve(%q) = %+v; want source %q name %q", tt.ref, art, tt.source, tt.name)
		}
	}
}

func TestResolveOrPlaceholder(t *testing.T) {
	ref := "https://example.com/a.png"

	if art := ResolveOrPlaceholder(failingResolver{}, ref); !art.Placeholder || art.Ref != ref {
		t.Errorf("Expected placeholder on failure, got %+v", art)
	}
	if art := ResolveOrPlaceholder(nil, ref); !art.Placeholder {
		t.Errorf("Expected placeholder for nil resolver, got %+v", art)
	}
	if art := ResolveOrPlaceholder(LabelResolver{}, ref); art.Placeholder || art.Source != "example.com" {
		t.Errorf("Expected resolved art, got %+v", art)
	}
	if art := ResolveOrPlaceholder(PlaceholderResolver{}, ref); !art.Placeholder {
		t.Errorf("Expected placeholder resolver to yield placeholder, got %+v", art)
	}
}

func TestForMode(t *testing.T) {
	if r, err := ForMode(""); err != nil {
		t.Errorf("ForMode(\"\") error: %v", err)
	} else if _, ok := r.(LabelResolver); !ok {
		t.Errorf("Expected LabelResolver by default, got %T", r)
	}
	if r, err := ForMode(ModePlaceholder); err != nil {
		t.Errorf("ForMode(placeholder) error: %v", err)
	} else if _, ok := r.(PlaceholderResolver); !ok {
		t.Errorf("Expected PlaceholderResolver, got %T", r)
	}
	if _, err := ForMode("sixel"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
