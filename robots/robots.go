package robots

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/armkin/core"
)

//go:embed data/*.yaml
var bundle embed.FS

// Sentinel errors for bundled-description loading.
var (
	// ErrUnknownRobot indicates that no bundled description carries the
	// requested name.
	ErrUnknownRobot = errors.New("robots: unknown robot name")

	// ErrBadDescription indicates a malformed description record
	// (YAML decode failure or list-length mismatch).
	ErrBadDescription = errors.New("robots: bad robot description")
)

// record mirrors the on-disk description format.
type record struct {
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	DHParameters []dhRow `yaml:"dhParameters"`
	JointLimits  []struct {
		Min float64 `yaml:"min"`
		Max float64 `yaml:"max"`
	} `yaml:"jointLimits"`
	JointTypes []string `yaml:"jointTypes"`
	BaseOffset offset   `yaml:"baseOffset"`
	ToolOffset offset   `yaml:"toolOffset"`
}

type dhRow struct {
	Theta float64 `yaml:"theta"`
	D     float64 `yaml:"d"`
	A     float64 `yaml:"a"`
	Alpha float64 `yaml:"alpha"`
}

type offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Names returns the sorted names of all bundled robot descriptions.
func Names() []string {
	entries, err := bundle.ReadDir("data")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(fmt.Sprintf("robots: embedded data unreadable: %v", err))
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load builds the RobotConfig for the bundled description called name.
// Unknown names yield ErrUnknownRobot; malformed records yield
// ErrBadDescription.
func Load(name string) (*core.RobotConfig, error) {
	raw, err := bundle.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRobot, name)
	}
	var rec record
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadDescription, name, err)
	}
	return rec.config()
}

// config converts a decoded record into an immutable RobotConfig,
// enforcing the list-length invariant of the record format.
func (rec *record) config() (*core.RobotConfig, error) {
	n := len(rec.DHParameters)
	if len(rec.JointLimits) != n || len(rec.JointTypes) != n {
		return nil, fmt.Errorf("%w: %q: %d dh rows, %d limits, %d types",
			ErrBadDescription, rec.Name, n, len(rec.JointLimits), len(rec.JointTypes))
	}
	joints := make([]core.JointSpec, n)
	for i, row := range rec.DHParameters {
		jt, err := core.ParseJointType(rec.JointTypes[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: joint %d: %v", ErrBadDescription, rec.Name, i, err)
		}
		joints[i] = core.JointSpec{
			Theta0: row.Theta,
			D:      row.D,
			A:      row.A,
			Alpha:  row.Alpha,
			Type:   jt,
			Limit:  core.Limit{Min: rec.JointLimits[i].Min, Max: rec.JointLimits[i].Max},
		}
	}
	cfg, err := core.New(joints,
		core.WithName(rec.Name),
		core.WithDescription(rec.Description),
		core.WithBaseOffset(core.Vec3{X: rec.BaseOffset.X, Y: rec.BaseOffset.Y, Z: rec.BaseOffset.Z}),
		core.WithToolOffset(core.Vec3{X: rec.ToolOffset.X, Y: rec.ToolOffset.Y, Z: rec.ToolOffset.Z}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadDescription, rec.Name, err)
	}
	return cfg, nil
}
