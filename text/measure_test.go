package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func goFace(t *testing.T, size float64) *Face {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	face, err := source.Face(size)
	if err != nil {
		t.Fatalf("Face failed: %v", err)
	}
	t.Cleanup(func() { _ = face.Close() })
	return face
}

func TestMeasureInk(t *testing.T) {
	face := goFace(t, 154)

	ext, err := MeasureInk("C", face)
	if err != nil {
		t.Fatalf("MeasureInk failed: %v", err)
	}
	if ext.Method != MethodInk {
		t.Errorf("Method = %v, want ink", ext.Method)
	}

	adv := MeasureAdvance("C", face)
	if ext.Width <= 0 || ext.Width > adv.Width {
		t.Errorf("ink width %d should be positive and within advance width %d", ext.Width, adv.Width)
	}
	if ext.Height <= 0 || ext.Height >= adv.Height {
		t.Errorf("ink height %d should be positive and below line height %d", ext.Height, adv.Height)
	}
}

func TestMeasureInkGrowsWithSize(t *testing.T) {
	small, err := MeasureInk("C", goFace(t, 19))
	if err != nil {
		t.Fatal(err)
	}
	large, err := MeasureInk("C", goFace(t, 154))
	if err != nil {
		t.Fatal(err)
	}
	if large.Width <= small.Width || large.Height <= small.Height {
		t.Errorf("154pt extents %+v should exceed 19pt extents %+v", large, small)
	}
}

func TestMeasureInkErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		face *Face
		want error
	}{
		{"builtin face", "C", Builtin(), ErrNotScalable},
		{"nil face", "C", nil, ErrNotScalable},
		{"empty text", "", goFace(t, 20), ErrNoInk},
		{"only spaces", "   ", goFace(t, 20), ErrNoInk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MeasureInk(tt.text, tt.face); !errors.Is(err, tt.want) {
				t.Errorf("MeasureInk() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMeasureFallsBackToAdvance(t *testing.T) {
	ext, err := Measure("C", Builtin())
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	want := Extents{Width: 7, Height: 13, Method: MethodAdvance}
	if ext != want {
		t.Errorf("Measure() = %+v, want %+v", ext, want)
	}
}

func TestMeasurePrefersInk(t *testing.T) {
	ext, err := Measure("C", goFace(t, 77))
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if ext.Method != MethodInk {
		t.Errorf("Method = %v, want ink", ext.Method)
	}
}

func TestMeasureNilFace(t *testing.T) {
	if _, err := Measure("C", nil); err == nil {
		t.Error("Measure(nil face) should fail")
	}
}

func TestMethodString(t *testing.T) {
	tests := []struct {
		m    Method
		want string
	}{
		{MethodInk, "ink"},
		{MethodAdvance, "advance"},
		{Method(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Method(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
