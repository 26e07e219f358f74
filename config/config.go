//Package config loads the aircraft geometry configuration records.
//
//A configuration file has two flat sections, lifting_surface and
//control_surface. Field names carry a unit suffix, for example
//root_chord[in], and the loader resolves the suffix so the calculator only
//ever sees unit-tagged values. JSON and YAML files are supported.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	aerogeometry "github.com/aerotools-dev/go_aerogeometry"
	"github.com/aerotools-dev/go_aerogeometry/amath/unit"
)

var distanceUnits = map[string]byte{
	"in": unit.DistanceInch,
	"ft": unit.DistanceFoot,
	"yd": unit.DistanceYard,
	"mm": unit.DistanceMillimeter,
	"cm": unit.DistanceCentimeter,
	"m":  unit.DistanceMeter,
}

type document struct {
	LiftingSurface map[string]interface{} `json:"lifting_surface" yaml:"lifting_surface"`
	ControlSurface map[string]interface{} `json:"control_surface" yaml:"control_surface"`
}

//Load reads the configuration file specified and builds the lifting surface
//record.
//
//Files named *.yaml or *.yml are parsed as YAML, anything else as JSON.
func Load(path string) (aerogeometry.LiftingSurface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return aerogeometry.LiftingSurface{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

//ParseJSON builds the lifting surface record from a JSON document
func ParseJSON(data []byte) (aerogeometry.LiftingSurface, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return aerogeometry.LiftingSurface{}, fmt.Errorf("config: %w", err)
	}
	return build(doc)
}

//ParseYAML builds the lifting surface record from a YAML document
func ParseYAML(data []byte) (aerogeometry.LiftingSurface, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return aerogeometry.LiftingSurface{}, fmt.Errorf("config: %w", err)
	}
	return build(doc)
}

func build(doc document) (aerogeometry.LiftingSurface, error) {
	lifting, err := newSection("lifting_surface", doc.LiftingSurface)
	if err != nil {
		return aerogeometry.LiftingSurface{}, err
	}
	control, err := newSection("control_surface", doc.ControlSurface)
	if err != nil {
		return aerogeometry.LiftingSurface{}, err
	}

	var (
		name                                     string
		swept, hasControl                        bool
		noseToRootLE, parallel, perpendicular    unit.Distance
		rootChord, tipChord, semispan, thickness unit.Distance
	)
	steps := []func() error{
		func() (e error) { name, e = lifting.str("name"); return },
		func() (e error) { swept, e = lifting.boolean("swept"); return },
		func() (e error) { noseToRootLE, e = lifting.distance("length_from_nose_to_leading_edge_at_root"); return },
		func() (e error) { parallel, e = lifting.distance("length_parallel_to_unswept_segment"); return },
		func() (e error) { perpendicular, e = lifting.distance("length_perpendicular_to_unswept_segment"); return },
		func() (e error) { rootChord, e = lifting.distance("root_chord"); return },
		func() (e error) { tipChord, e = lifting.distance("tip_chord"); return },
		func() (e error) { semispan, e = lifting.distance("semispan"); return },
		func() (e error) { thickness, e = lifting.distance("thickness"); return },
		func() (e error) { hasControl, e = control.boolean("has_control_surface"); return },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return aerogeometry.LiftingSurface{}, err
		}
	}

	var surface aerogeometry.LiftingSurface
	if swept {
		surface = aerogeometry.CreateSweptLiftingSurface(name, noseToRootLE, parallel, perpendicular,
			rootChord, tipChord, semispan, thickness)
	} else {
		surface = aerogeometry.CreateLiftingSurface(name, noseToRootLE, rootChord, tipChord, semispan, thickness)
	}

	if hasControl {
		controlName, err := control.str("name")
		if err != nil {
			return aerogeometry.LiftingSurface{}, err
		}
		spanwise, err := control.stationPair("spanwise_distance_from_root")
		if err != nil {
			return aerogeometry.LiftingSurface{}, err
		}
		chord, err := control.stationPair("chord")
		if err != nil {
			return aerogeometry.LiftingSurface{}, err
		}
		controlThickness, err := control.stationPair("thickness")
		if err != nil {
			return aerogeometry.LiftingSurface{}, err
		}
		surface = surface.WithControlSurface(
			aerogeometry.CreateControlSurface(controlName, spanwise, chord, controlThickness))
	}

	return surface, nil
}

type field struct {
	tag   string
	value interface{}
}

//section wraps one flat mapping of unit-suffixed field names to values and
//resolves fields by their logical name
type section struct {
	name   string
	fields map[string]field
}

func newSection(name string, raw map[string]interface{}) (section, error) {
	if raw == nil {
		return section{}, &aerogeometry.InvalidInputError{Field: name, Reason: "section is missing"}
	}
	s := section{name: name, fields: make(map[string]field, len(raw))}
	for key, value := range raw {
		open := strings.LastIndexByte(key, '[')
		if open <= 0 || !strings.HasSuffix(key, "]") {
			return section{}, &aerogeometry.InvalidInputError{
				Field: name + "." + key, Reason: "field name carries no unit tag"}
		}
		s.fields[key[:open]] = field{tag: key[open+1 : len(key)-1], value: value}
	}
	return s, nil
}

func (s section) lookup(name string) (field, error) {
	f, ok := s.fields[name]
	if !ok {
		return field{}, &aerogeometry.InvalidInputError{Field: s.name + "." + name, Reason: "is missing"}
	}
	return f, nil
}

func (s section) str(name string) (string, error) {
	f, err := s.lookup(name)
	if err != nil {
		return "", err
	}
	if f.tag != "str" {
		return "", &aerogeometry.InvalidInputError{Field: s.name + "." + name, Reason: "is not tagged as a string"}
	}
	value, ok := f.value.(string)
	if !ok {
		return "", &aerogeometry.InvalidInputError{Field: s.name + "." + name, Reason: "is not a string"}
	}
	return value, nil
}

func (s section) boolean(name string) (bool, error) {
	f, err := s.lookup(name)
	if err != nil {
		return false, err
	}
	if f.tag != "bool" {
		return false, &aerogeometry.InvalidInputError{Field: s.name + "." + name, Reason: "is not tagged as a boolean"}
	}
	value, ok := f.value.(bool)
	if !ok {
		return false, &aerogeometry.InvalidInputError{Field: s.name + "." + name, Reason: "is not a boolean"}
	}
	return value, nil
}

func (s section) distance(name string) (unit.Distance, error) {
	f, err := s.lookup(name)
	if err != nil {
		return unit.Distance{}, err
	}
	units, ok := distanceUnits[f.tag]
	if !ok {
		return unit.Distance{}, &aerogeometry.InvalidInputError{
			Field: s.name + "." + name, Reason: fmt.Sprintf("has unsupported length unit %q", f.tag)}
	}
	value, ok := asFloat(f.value)
	if !ok {
		return unit.Distance{}, &aerogeometry.InvalidInputError{Field: s.name + "." + name, Reason: "is not a number"}
	}
	if value < 0 {
		return unit.Distance{}, &aerogeometry.InvalidInputError{Field: s.name + "." + name, Reason: "is a negative length"}
	}
	return unit.MustCreateDistance(value, units), nil
}

func (s section) stationPair(name string) (aerogeometry.StationPair, error) {
	f, err := s.lookup(name)
	if err != nil {
		return aerogeometry.StationPair{}, err
	}
	units, ok := distanceUnits[f.tag]
	if !ok {
		return aerogeometry.StationPair{}, &aerogeometry.InvalidInputError{
			Field: s.name + "." + name, Reason: fmt.Sprintf("has unsupported length unit %q", f.tag)}
	}
	list, ok := f.value.([]interface{})
	if !ok || len(list) != 2 {
		return aerogeometry.StationPair{}, &aerogeometry.InvalidInputError{
			Field: s.name + "." + name, Reason: "is not a two-element root/tip list"}
	}
	values := make([]float64, 2)
	for i, raw := range list {
		value, ok := asFloat(raw)
		if !ok {
			return aerogeometry.StationPair{}, &aerogeometry.InvalidInputError{Field: s.name + "." + name, Reason: "is not a number"}
		}
		if value < 0 {
			return aerogeometry.StationPair{}, &aerogeometry.InvalidInputError{Field: s.name + "." + name, Reason: "is a negative length"}
		}
		values[i] = value
	}
	return aerogeometry.CreateStationPair(
		unit.MustCreateDistance(values[0], units),
		unit.MustCreateDistance(values[1], units)), nil
}

func asFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
