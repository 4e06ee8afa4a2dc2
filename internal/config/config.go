package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mapedit/internal/edit"
	"mapedit/internal/mapdata"
)

type GridSpec struct {
	Size float64 `yaml:"size"`
	Snap bool    `yaml:"snap"`
}

type ShapeDrawSpec struct {
	Shape     string `yaml:"shape"`
	Sides     int    `yaml:"sides"`
	LockRatio bool   `yaml:"lock_ratio"`
	Centered  bool   `yaml:"centered"`
}

type SectorSpec struct {
	Floor    int    `yaml:"floor"`
	Ceiling  int    `yaml:"ceiling"`
	FloorTex string `yaml:"floor_tex"`
	CeilTex  string `yaml:"ceil_tex"`
	Light    int    `yaml:"light"`
}

type SideSpec struct {
	MiddleTex string `yaml:"middle_tex"`
}

type ThingTypeSpec struct {
	Name   string  `yaml:"name"`
	Radius float64 `yaml:"radius"`
}

type ThingsSpec struct {
	DefaultRadius float64               `yaml:"default_radius"`
	ImportType    int                   `yaml:"import_type"`
	Types         map[int]ThingTypeSpec `yaml:"types"`
}

// Config is the editor configuration file.
type Config struct {
	Grid      GridSpec      `yaml:"grid"`
	ShapeDraw ShapeDrawSpec `yaml:"shape_draw"`
	Sector    SectorSpec    `yaml:"sector"`
	Side      SideSpec      `yaml:"side"`
	Things    ThingsSpec    `yaml:"things"`
	LogFile   string        `yaml:"log_file"`
}

func Default() Config {
	p := mapdata.DefaultProps()
	return Config{
		Grid:      GridSpec{Size: 16, Snap: true},
		ShapeDraw: ShapeDrawSpec{Shape: "rectangle", Sides: 16},
		Sector: SectorSpec{
			Floor:    p.Floor,
			Ceiling:  p.Ceiling,
			FloorTex: p.FloorTex,
			CeilTex:  p.CeilTex,
			Light:    p.Light,
		},
		Side: SideSpec{MiddleTex: p.MiddleTex},
		Things: ThingsSpec{
			DefaultRadius: 20,
			ImportType:    1,
			Types: map[int]ThingTypeSpec{
				1:    {Name: "Player 1 start", Radius: 16},
				2035: {Name: "Barrel", Radius: 10},
				3001: {Name: "Imp", Radius: 20},
				3003: {Name: "Baron of Hell", Radius: 24},
			},
		},
	}
}

// Load reads path over the defaults, so keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Grid.Size <= 0 {
		errs = append(errs, fmt.Errorf("grid.size must be positive, got %v", c.Grid.Size))
	}
	if _, err := parseShape(c.ShapeDraw.Shape); err != nil {
		errs = append(errs, err)
	}
	if c.ShapeDraw.Sides < 3 {
		errs = append(errs, fmt.Errorf("shape_draw.sides must be at least 3, got %d", c.ShapeDraw.Sides))
	}
	if c.Sector.Ceiling < c.Sector.Floor {
		errs = append(errs, fmt.Errorf("sector.ceiling %d is below sector.floor %d", c.Sector.Ceiling, c.Sector.Floor))
	}
	if c.Things.DefaultRadius <= 0 {
		errs = append(errs, fmt.Errorf("things.default_radius must be positive, got %v", c.Things.DefaultRadius))
	}
	for typ, spec := range c.Things.Types {
		if spec.Radius < 0 {
			errs = append(errs, fmt.Errorf("things.types.%d.radius is negative", typ))
		}
	}
	return errors.Join(errs...)
}

func parseShape(s string) (edit.ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rectangle", "rect":
		return edit.ShapeRectangle, nil
	case "ellipse", "circle":
		return edit.ShapeEllipse, nil
	}
	return edit.ShapeRectangle, fmt.Errorf("shape_draw.shape %q is not rectangle or ellipse", s)
}

// Props returns the defaults for new sectors and sides.
func (c Config) Props() mapdata.Props {
	return mapdata.Props{
		Floor:     c.Sector.Floor,
		Ceiling:   c.Sector.Ceiling,
		FloorTex:  c.Sector.FloorTex,
		CeilTex:   c.Sector.CeilTex,
		Light:     c.Sector.Light,
		MiddleTex: c.Side.MiddleTex,
	}
}

func (c Config) Shape() edit.ShapeOptions {
	kind, _ := parseShape(c.ShapeDraw.Shape)
	return edit.ShapeOptions{
		Kind:      kind,
		Sides:     c.ShapeDraw.Sides,
		LockRatio: c.ShapeDraw.LockRatio,
		Centered:  c.ShapeDraw.Centered,
	}
}

// ThingRadius is the pick radius of a thing type. Unknown types and types
// without a radius use things.default_radius.
func (c Config) ThingRadius(thingType int) float64 {
	if spec, ok := c.Things.Types[thingType]; ok && spec.Radius > 0 {
		return spec.Radius
	}
	return c.Things.DefaultRadius
}

func (c Config) ThingName(thingType int) string {
	if spec, ok := c.Things.Types[thingType]; ok && spec.Name != "" {
		return spec.Name
	}
	return fmt.Sprintf("type %d", thingType)
}
