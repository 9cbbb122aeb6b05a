package level

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/u1krsh/GenesisEngine/world"
)

const sampleLevel = `
name: test-arena
floor: -1
spawn: [0, 2, 0]
boxes:
  - center: [0, 1, 8]
    size: [6, 2, 6]
  - center: [0, 0.2, 4.6]
    size: [6, 0.4, 0.8]
    tag: stair
  - center: [0, 3.5, 8]
    size: [6, 1, 6]
    tag: trigger
    solid: false
`

func TestParse(t *testing.T) {
	l, err := Parse([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if l.Name != "test-arena" {
		t.Fatalf("name = %q, want %q", l.Name, "test-arena")
	}
	if l.Floor != -1 {
		t.Fatalf("floor = %v, want -1", l.Floor)
	}
	if l.Spawn != (mgl32.Vec3{0, 2, 0}) {
		t.Fatalf("spawn = %v, want (0,2,0)", l.Spawn)
	}
	if len(l.Boxes) != 3 {
		t.Fatalf("box count = %d, want 3", len(l.Boxes))
	}

	// Size is given as full dimensions; half-extents are stored.
	if he := l.Boxes[0].HalfExtents; he != (mgl32.Vec3{3, 1, 3}) {
		t.Fatalf("half extents = %v, want (3,1,3)", he)
	}
	if l.Boxes[0].Tag != world.TagDefault || !l.Boxes[0].Solid {
		t.Fatalf("box 0 should be solid default, got %v solid=%v", l.Boxes[0].Tag, l.Boxes[0].Solid)
	}
	if l.Boxes[1].Tag != world.TagStair {
		t.Fatalf("box 1 tag = %v, want stair", l.Boxes[1].Tag)
	}
	if l.Boxes[2].Tag != world.TagTrigger || l.Boxes[2].Solid {
		t.Fatalf("box 2 should be a non-solid trigger, got %v solid=%v", l.Boxes[2].Tag, l.Boxes[2].Solid)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"missing name": `floor: 0`,
		"bad spawn":    "name: a\nspawn: [1, 2]",
		"bad box":      "name: a\nboxes:\n  - center: [0, 0]\n    size: [1, 1, 1]",
		"bad tag":      "name: a\nboxes:\n  - center: [0, 0, 0]\n    size: [1, 1, 1]\n    tag: bogus",
		"not yaml":     `{{{`,
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected parse error", name)
		}
	}
}

func TestChecksum(t *testing.T) {
	a, err := Parse([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b, err := Parse([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if a.Checksum() != b.Checksum() {
		t.Fatal("identical documents should produce identical checksums")
	}

	c, err := Parse([]byte(sampleLevel + "\n# trailing comment\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if a.Checksum() == c.Checksum() {
		t.Fatal("different documents should produce different checksums")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")
	if err := os.WriteFile(path, []byte(sampleLevel), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if l.Name != "test-arena" {
		t.Fatalf("name = %q, want %q", l.Name, "test-arena")
	}
	if l.Path() != path {
		t.Fatalf("path = %q, want %q", l.Path(), path)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("loading a missing file should fail")
	}
}

func TestApply(t *testing.T) {
	l, err := Parse([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	w := world.New(log)
	l.Apply(w)

	if got := len(w.Boxes()); got != 3 {
		t.Fatalf("world box count = %d, want 3", got)
	}
	if w.FloorHeight() != -1 {
		t.Fatalf("world floor = %v, want -1", w.FloorHeight())
	}
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.Put(&Level{Name: "c"})
	r.Put(&Level{Name: "a"})
	r.Put(&Level{Name: "b"})

	names := r.Names()
	want := []string{"c", "a", "b"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want insertion order %v", names, want)
		}
	}

	if first := r.First(); first == nil || first.Name != "c" {
		t.Fatalf("first = %v, want level c", first)
	}
	if _, ok := r.Get("a"); !ok {
		t.Fatal("registry should contain level a")
	}
	if r.Len() != 3 {
		t.Fatalf("len = %d, want 3", r.Len())
	}
}

func TestRegistryReplaceKeepsOrder(t *testing.T) {
	r := NewRegistry()
	r.Put(&Level{Name: "a", Floor: 0})
	r.Put(&Level{Name: "b"})
	r.Put(&Level{Name: "a", Floor: 5})

	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	l, _ := r.Get("a")
	if l.Floor != 5 {
		t.Fatalf("replaced level floor = %v, want 5", l.Floor)
	}
	if first := r.First(); first.Name != "a" {
		t.Fatalf("first = %q, replacement should keep insertion order", first.Name)
	}
}
