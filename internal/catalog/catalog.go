package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/2beens/gymquest/internal/session"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrPlanNotFound  = errors.New("plan not found")
	ErrPathNotFound  = errors.New("path not found")
	ErrDuplicateID   = errors.New("duplicate id in catalog")
	ErrUnknownLevel  = errors.New("path level references unknown plan")
	ErrUnknownFormat = errors.New("unknown catalog file format")
)

// Path is a learning path: an ordered list of plan IDs the user works through.
type Path struct {
	ID     string   `json:"id" toml:"id" yaml:"id"`
	Title  string   `json:"title" toml:"title" yaml:"title"`
	Levels []string `json:"levels" toml:"levels" yaml:"levels"`
}

type file struct {
	Plans []session.Plan `toml:"plans" yaml:"plans"`
	Paths []Path         `toml:"paths" yaml:"paths"`
}

type Catalog struct {
	plans map[string]session.Plan
	paths []Path
}

func New(plans []session.Plan, paths []Path) (*Catalog, error) {
	c := &Catalog{
		plans: make(map[string]session.Plan, len(plans)),
		paths: make([]Path, 0, len(paths)),
	}

	for _, p := range plans {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.plans[p.ID]; ok {
			return nil, fmt.Errorf("%w: plan %s", ErrDuplicateID, p.ID)
		}
		c.plans[p.ID] = p
	}

	seenPaths := make(map[string]bool, len(paths))
	for _, path := range paths {
		if seenPaths[path.ID] {
			return nil, fmt.Errorf("%w: path %s", ErrDuplicateID, path.ID)
		}
		seenPaths[path.ID] = true
		for _, level := range path.Levels {
			if _, ok := c.plans[level]; !ok {
				return nil, fmt.Errorf("%w: path %s, level %s", ErrUnknownLevel, path.ID, level)
			}
		}
		path.Levels = append([]string(nil), path.Levels...)
		c.paths = append(c.paths, path)
	}

	return c, nil
}

// Load reads a catalog from a .toml, .yaml or .yml file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(strings.TrimPrefix(filepath.Ext(path), "."), data)
}

func Parse(format string, data []byte) (*Catalog, error) {
	var f file
	switch strings.ToLower(format) {
	case "toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("decode toml catalog: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return New(f.Plans, f.Paths)
}

func (c *Catalog) Plan(id string) (session.Plan, error) {
	p, ok := c.plans[id]
	if !ok {
		return session.Plan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	return p, nil
}

// PlansByID resolves ids in order, failing on the first unknown one.
func (c *Catalog) PlansByID(ids []string) ([]session.Plan, error) {
	plans := make([]session.Plan, 0, len(ids))
	for _, id := range ids {
		p, err := c.Plan(id)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// Plans returns all plans sorted by ID.
func (c *Catalog) Plans() []session.Plan {
	plans := make([]session.Plan, 0, len(c.plans))
	for _, p := range c.plans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].ID < plans[j].ID
	})
	return plans
}

func (c *Catalog) Paths() []Path {
	paths := make([]Path, len(c.paths))
	copy(paths, c.paths)
	return paths
}

func (c *Catalog) Path(id string) (Path, error) {
	for _, p := range c.paths {
		if p.ID == id {
			return p, nil
		}
	}
	return Path{}, fmt.Errorf("%w: %s", ErrPathNotFound, id)
}

func (c *Catalog) PlansFor(pathID string) ([]session.Plan, error) {
	path, err := c.Path(pathID)
	if err != nil {
		return nil, err
	}
	return c.PlansByID(path.Levels)
}

// NextLevel returns the plan after completedPlanID on the path.
// ok is false when completedPlanID is the last level.
func (c *Catalog) NextLevel(pathID, completedPlanID string) (_ session.Plan, ok bool, err error) {
	path, err := c.Path(pathID)
	if err != nil {
		return session.Plan{}, false, err
	}
	for i, level := range path.Levels {
		if level != completedPlanID {
			continue
		}
		if i+1 == len(path.Levels) {
			return session.Plan{}, false, nil
		}
		next, err := c.Plan(path.Levels[i+1])
		return next, err == nil, err
	}
	return session.Plan{}, false, fmt.Errorf("%w: %s not on path %s", ErrPlanNotFound, completedPlanID, pathID)
}
