package tabs

import (
	"path/filepath"
	"testing"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
)

func TestNewPlotTabName(t *testing.T) {
	if _, err := NewPlotTab(""); !errors.Is(err, errors.ErrCodeInvalidTab) {
		t.Errorf("NewPlotTab(\"\") error = %v, want invalid tab", err)
	}
	tab, err := NewPlotTab("Noise budget")
	if err != nil {
		t.Fatalf("NewPlotTab() error = %v", err)
	}
	if tab.Name() != "Noise budget" {
		t.Errorf("Name() = %q", tab.Name())
	}
	if tab.ShortName() != "Noise budget" {
		t.Errorf("ShortName() = %q, want fallback to name", tab.ShortName())
	}
}

func TestIndexDerivation(t *testing.T) {
	parent, err := NewPlotTab("Detector", WithPath("out"))
	if err != nil {
		t.Fatal(err)
	}
	child, err := NewPlotTab("Noise Budget", WithPath("out"))
	if err != nil {
		t.Fatal(err)
	}
	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild() error = %v", err)
	}

	if got, want := parent.Index(), filepath.Join("out", "detector", "index.html"); got != want {
		t.Errorf("parent Index() = %q, want %q", got, want)
	}
	if got, want := child.Index(), filepath.Join("out", "detector", "noise_budget", "index.html"); got != want {
		t.Errorf("child Index() = %q, want %q", got, want)
	}

	// An explicit index wins over derivation.
	custom, err := NewPlotTab("Custom", WithIndex("out/custom.html"))
	if err != nil {
		t.Fatal(err)
	}
	if got := custom.Index(); got != "out/custom.html" {
		t.Errorf("custom Index() = %q", got)
	}
}

func TestAddChildInvariants(t *testing.T) {
	a, _ := NewPlotTab("a")
	b, _ := NewPlotTab("b")
	c, _ := NewPlotTab("c")

	if err := a.AddChild(b); err != nil {
		t.Fatalf("AddChild(b) error = %v", err)
	}
	if err := b.AddChild(c); err != nil {
		t.Fatalf("AddChild(c) error = %v", err)
	}

	// Parent back-references.
	if c.Parent() != Tab(b) {
		t.Error("child parent back-reference not set")
	}
	if len(a.Children()) != 1 || a.Children()[0].Name() != "b" {
		t.Errorf("a.Children() = %v", a.Children())
	}

	// Self-reference and ancestor cycles are rejected.
	if err := a.AddChild(a); !errors.Is(err, errors.ErrCodeInvalidTab) {
		t.Errorf("AddChild(self) error = %v, want invalid tab", err)
	}
	if err := c.AddChild(a); !errors.Is(err, errors.ErrCodeInvalidTab) {
		t.Errorf("AddChild(ancestor) error = %v, want invalid tab", err)
	}
	if err := a.AddChild(nil); !errors.Is(err, errors.ErrCodeInvalidTab) {
		t.Errorf("AddChild(nil) error = %v, want invalid tab", err)
	}
}

func TestNavLinks(t *testing.T) {
	parent, _ := NewPlotTab("Detector", WithPath("out"))
	c1, _ := NewPlotTab("Budget", WithPath("out"), WithGroup("Spectra"))
	c2, _ := NewPlotTab("Range", WithPath("out"), WithGroup("Spectra"), WithShortName("Rng"))
	_ = parent.AddChild(c1)
	_ = parent.AddChild(c2)

	links := NavLinks([]Tab{parent})
	if len(links) != 1 {
		t.Fatalf("len(links) = %d", len(links))
	}
	if len(links[0].Children) != 2 {
		t.Fatalf("len(children) = %d", len(links[0].Children))
	}
	if links[0].Children[0].Group != "Spectra" {
		t.Errorf("child group = %q", links[0].Children[0].Group)
	}
	if links[0].Children[1].Name != "Rng" {
		t.Errorf("short name not used: %q", links[0].Children[1].Name)
	}
}
