package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeRasterizer struct {
	pages  []PageImage
	err    error
	gotDPI int
}

func (f *fakeRasterizer) Rasterize(_ context.Context, _ string, dpi int) ([]PageImage, error) {
	f.gotDPI = dpi
	return f.pages, f.err
}

// fakeEngine returns canned text per page number and fails on the pages
// listed in fail.
type fakeEngine struct {
	fail map[int]bool
}

func (f *fakeEngine) Recognize(_ context.Context, page PageImage) (string, error) {
	if f.fail[page.Number] {
		return "", errors.New("empty page")
	}
	return fmt.Sprintf("text of page %d\n", page.Number), nil
}

func threePages() []PageImage {
	return []PageImage{
		{Number: 1, PNG: []byte("p1")},
		{Number: 2, PNG: []byte("p2")},
		{Number: 3, PNG: []byte("p3")},
	}
}

func TestExtract_JoinsPagesInOrder(t *testing.T) {
	e := &Extractor{
		Rasterizer: &fakeRasterizer{pages: threePages()},
		Engine:     &fakeEngine{},
	}

	got, err := e.Extract(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := "text of page 1\n\ntext of page 2\n\ntext of page 3"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtract_PageFailureIsIsolated(t *testing.T) {
	e := &Extractor{
		Rasterizer: &fakeRasterizer{pages: threePages()},
		Engine:     &fakeEngine{fail: map[int]bool{2: true}},
	}

	got, err := e.Extract(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("a single page failure must not abort the run: %v", err)
	}

	parts := strings.Split(got, "\n\n")
	if len(parts) != 3 {
		t.Fatalf("expected 3 page blocks, got %d: %q", len(parts), got)
	}
	if parts[0] != "text of page 1" {
		t.Fatalf("page 1: %q", parts[0])
	}
	if parts[1] != "[OCR ERROR on page 2]" {
		t.Fatalf("page 2 placeholder: %q", parts[1])
	}
	if parts[2] != "text of page 3" {
		t.Fatalf("page 3: %q", parts[2])
	}
}

func TestExtract_AllPagesFailed(t *testing.T) {
	e := &Extractor{
		Rasterizer: &fakeRasterizer{pages: threePages()},
		Engine:     &fakeEngine{fail: map[int]bool{1: true, 2: true, 3: true}},
	}

	got, err := e.Extract(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := "[OCR ERROR on page 1]\n\n[OCR ERROR on page 2]\n\n[OCR ERROR on page 3]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtract_RasterizeFailureAborts(t *testing.T) {
	e := &Extractor{
		Rasterizer: &fakeRasterizer{err: errors.New("damaged document")},
		Engine:     &fakeEngine{},
	}

	if _, err := e.Extract(context.Background(), "doc.pdf"); err == nil {
		t.Fatal("expected rasterization failure to surface")
	}
}

func TestExtract_DPI(t *testing.T) {
	r := &fakeRasterizer{pages: threePages()}
	e := &Extractor{Rasterizer: r, Engine: &fakeEngine{}, DPI: 300}
	if _, err := e.Extract(context.Background(), "doc.pdf"); err != nil {
		t.Fatalf("extract: %v", err)
	}
	if r.gotDPI != 300 {
		t.Fatalf("dpi %d, want 300", r.gotDPI)
	}

	r2 := &fakeRasterizer{pages: threePages()}
	e2 := &Extractor{Rasterizer: r2, Engine: &fakeEngine{}}
	if _, err := e2.Extract(context.Background(), "doc.pdf"); err != nil {
		t.Fatalf("extract: %v", err)
	}
	if r2.gotDPI != DefaultDPI {
		t.Fatalf("dpi %d, want default %d", r2.gotDPI, DefaultDPI)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		hint    string
		want    string
		wantErr bool
	}{
		{"", DefaultLanguage, false},
		{"eng", "eng", false},
		{"DEU", "deu", false},
		{"en", "eng", false},
		{"fi", "fin", false},
		{"pt-BR", "por", false},
		{"!!not-a-tag", "", true},
	}

	for _, tc := range cases {
		got, err := NormalizeLanguage(tc.hint)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("hint %q: expected error", tc.hint)
			}
			continue
		}
		if err != nil {
			t.Fatalf("hint %q: %v", tc.hint, err)
		}
		if got != tc.want {
			t.Fatalf("hint %q: got %q, want %q", tc.hint, got, tc.want)
		}
	}
}
