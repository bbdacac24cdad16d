package platform

import (
	"testing"

	"github.com/mj1618/object-viewer/internal/model"
)

func TestParseSource_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Source
	}{
		{"", SourceNone},
		{"focus", SourceFocus},
		{"Focus", SourceFocus},
		{"mouse", SourceMouse},
		{"pointer", SourceMouse},
		{"navigator", SourceNavigator},
		{"NAV", SourceNavigator},
		{"review", SourceNavigator},
	}
	for _, tt := range tests {
		got, err := ParseSource(tt.input)
		if err != nil {
			t.Errorf("ParseSource(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseSource(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseSource_Invalid(t *testing.T) {
	if _, err := ParseSource("keyboard"); err == nil {
		t.Error("ParseSource(\"keyboard\") should fail")
	}
}

type namedObject struct{ model.Object }

type stubHost struct {
	focus, mouse, nav model.Object
}

func (h stubHost) Desktop() model.Object { return nil }
func (h stubHost) Focus() model.Object { return h.focus }
func (h stubHost) Mouse() model.Object { return h.mouse }
func (h stubHost) Navigator() model.Object { return h.nav }
func (h stubHost) Lookup(string) model.Object { return nil }
func (h stubHost) SimpleReviewMode() bool { return false }

func TestResolve(t *testing.T) {
	f, m, n := &namedObject{}, &namedObject{}, &namedObject{}
	h := stubHost{focus: f, mouse: m, nav: n}

	if Resolve(h, SourceFocus) != f {
		t.Error("focus source should resolve the focus object")
	}
	if Resolve(h, SourceMouse) != m {
		t.Error("mouse source should resolve the mouse object")
	}
	if Resolve(h, SourceNavigator) != n {
		t.Error("navigator source should resolve the navigator object")
	}
	if Resolve(h, SourceNone) != nil {
		t.Error("no source should resolve nothing")
	}
}
