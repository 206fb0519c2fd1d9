package biome

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// Feature selects one component of Features.
type Feature uint8

const (
	Elevation Feature = iota
	Temperature
	Moisture
	Detail
)

func (f Feature) String() string {
	switch f {
	case Elevation:
		return "elevation"
	case Temperature:
		return "temperature"
	case Moisture:
		return "moisture"
	case Detail:
		return "detail"
	}
	return "feature(" + strconv.Itoa(int(f)) + ")"
}

// Features is one cell's normalised noise readings, each in [0, 1].
type Features struct {
	Elevation   float64
	Temperature float64
	Moisture    float64
	Detail      float64
}

// Get returns the component named by f.
func (fs Features) Get(f Feature) float64 {
	switch f {
	case Elevation:
		return fs.Elevation
	case Temperature:
		return fs.Temperature
	case Moisture:
		return fs.Moisture
	case Detail:
		return fs.Detail
	}
	return 0
}

// Normalize maps v from [lo, hi] onto [0, 1], clamping overshoot.
func Normalize(v, lo, hi float64) float64 {
	return mgl64.Clamp((v-lo)/(hi-lo), 0, 1)
}

// Op is a strict comparison against a rule threshold.
type Op uint8

const (
	Less Op = iota
	Greater
)

func (o Op) String() string {
	if o == Greater {
		return ">"
	}
	return "<"
}

// Rule assigns Kind when Feature compares true against Threshold.
type Rule struct {
	Feature   Feature
	Op        Op
	Threshold float64
	Kind      Kind
}

// Below is shorthand for a Less rule.
func Below(f Feature, threshold float64, k Kind) Rule {
	return Rule{Feature: f, Op: Less, Threshold: threshold, Kind: k}
}

// Above is shorthand for a Greater rule.
func Above(f Feature, threshold float64, k Kind) Rule {
	return Rule{Feature: f, Op: Greater, Threshold: threshold, Kind: k}
}

// Matches reports whether the rule fires for fs.
func (r Rule) Matches(fs Features) bool {
	v := fs.Get(r.Feature)
	if r.Op == Greater {
		return v > r.Threshold
	}
	return v < r.Threshold
}

func (r Rule) String() string {
	return fmt.Sprintf("%s%s%g → %s", r.Feature, r.Op, r.Threshold, r.Kind)
}

// DefaultRules is the canonical rule list. Order matters: water first, then
// temperature bands, then moisture bands.
func DefaultRules() []Rule {
	return []Rule{
		Below(Elevation, 0.2, Ocean),
		Above(Moisture, 0.8, Beach),
		Below(Temperature, 0.2, Snow),
		Below(Temperature, 0.4, Mountain),
		Below(Moisture, 0.3, Desert),
		Below(Temperature, 0.6, Plains),
		Below(Moisture, 0.5, Grassland),
		Above(Moisture, 0.5, Swamp),
		Above(Elevation, 0.3, Forest),
		Above(Temperature, 0.5, Jungle),
	}
}

// DefaultFallback is returned when no default rule fires.
const DefaultFallback = Grassland

// Classifier picks a biome with the first matching rule.
type Classifier struct {
	rules    []Rule
	fallback Kind
}

// NewClassifier copies rules; fallback is used when none of them fire.
func NewClassifier(fallback Kind, rules ...Rule) (*Classifier, error) {
	if !fallback.Valid() {
		return nil, fmt.Errorf("fallback: invalid biome %s", fallback)
	}
	for i, r := range rules {
		if !r.Kind.Valid() {
			return nil, fmt.Errorf("rule %d: invalid biome %s", i, r.Kind)
		}
		if r.Feature > Detail {
			return nil, fmt.Errorf("rule %d: invalid %s", i, r.Feature)
		}
	}
	return &Classifier{rules: append([]Rule(nil), rules...), fallback: fallback}, nil
}

// DefaultClassifier returns a Classifier over DefaultRules.
func DefaultClassifier() *Classifier {
	return &Classifier{rules: DefaultRules(), fallback: DefaultFallback}
}

// Classify returns the biome of the first rule matching fs.
func (c *Classifier) Classify(fs Features) Biome {
	return Lookup(c.ClassifyKind(fs))
}

// ClassifyKind is Classify without the catalogue lookup.
func (c *Classifier) ClassifyKind(fs Features) Kind {
	for _, r := range c.rules {
		if r.Matches(fs) {
			return r.Kind
		}
	}
	return c.fallback
}

// Rules returns a copy of the rule list in evaluation order.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Fallback returns the kind used when no rule matches.
func (c *Classifier) Fallback() Kind {
	return c.fallback
}
