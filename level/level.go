package level

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/u1krsh/GenesisEngine/internal"
	"github.com/u1krsh/GenesisEngine/world"
	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"
)

// boxDefinition is the YAML form of a single world box. Center and size are
// three-component vectors; size holds full dimensions, not half-extents.
type boxDefinition struct {
	Center []float32 `yaml:"center"`
	Size   []float32 `yaml:"size"`
	Tag    string    `yaml:"tag"`
	Solid  *bool     `yaml:"solid"`
}

// definition is the YAML form of a level document.
type definition struct {
	Name  string          `yaml:"name"`
	Floor float32         `yaml:"floor"`
	Spawn []float32       `yaml:"spawn"`
	Boxes []boxDefinition `yaml:"boxes"`
}

// Level is a parsed, immutable level: the geometry to install into a world
// plus the floor baseline and the player spawn point.
type Level struct {
	Name  string
	Floor float32
	Spawn mgl32.Vec3
	Boxes []world.Box

	path string
	sum  uint64
}

// Parse decodes a level from its YAML document.
func Parse(data []byte) (*Level, error) {
	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("decode level: missing name")
	}

	lvl := &Level{
		Name:  def.Name,
		Floor: def.Floor,
		sum:   xxh3.Hash(data),
	}

	if len(def.Spawn) != 0 {
		if len(def.Spawn) != 3 {
			return nil, fmt.Errorf("level %s: spawn must have 3 components, got %d", def.Name, len(def.Spawn))
		}
		lvl.Spawn = mgl32.Vec3{def.Spawn[0], def.Spawn[1], def.Spawn[2]}
	}

	lvl.Boxes = make([]world.Box, 0, len(def.Boxes))
	for i, b := range def.Boxes {
		if len(b.Center) != 3 || len(b.Size) != 3 {
			return nil, fmt.Errorf("level %s: box %d: center and size must have 3 components", def.Name, i)
		}
		tag, err := parseTag(b.Tag)
		if err != nil {
			return nil, fmt.Errorf("level %s: box %d: %w", def.Name, i, err)
		}

		box := world.NewBox(
			mgl32.Vec3{b.Center[0], b.Center[1], b.Center[2]},
			mgl32.Vec3{b.Size[0] * 0.5, b.Size[1] * 0.5, b.Size[2] * 0.5},
			tag,
		)
		if b.Solid != nil {
			box.Solid = *b.Solid
		}
		lvl.Boxes = append(lvl.Boxes, box)
	}

	return lvl, nil
}

// Load reads and parses the level file at the given path.
func Load(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()

	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	lvl, err := Parse(buf.Bytes())
	if err != nil {
		return nil, err
	}
	lvl.path = path
	return lvl, nil
}

// Checksum returns the hash of the source document the level was parsed from,
// used to skip re-applying unchanged files.
func (l *Level) Checksum() uint64 {
	return l.sum
}

// Path returns the file the level was loaded from, if any.
func (l *Level) Path() string {
	return l.path
}

// Apply installs the level's geometry and floor baseline into the given
// world. The caller must guarantee no tick is in flight.
func (l *Level) Apply(w *world.World) {
	w.Replace(l.Boxes)
	w.SetFloorHeight(l.Floor)
}

func parseTag(s string) (world.Tag, error) {
	switch s {
	case "", "default":
		return world.TagDefault, nil
	case "stair":
		return world.TagStair, nil
	case "ramp":
		return world.TagRamp, nil
	case "platform":
		return world.TagPlatform, nil
	case "trigger":
		return world.TagTrigger, nil
	}
	return world.TagDefault, fmt.Errorf("unknown box tag %q", s)
}
