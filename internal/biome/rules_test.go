package biome

import "testing"

func TestDefaultClassifier(t *testing.T) {
	c := DefaultClassifier()

	tests := []struct {
		name string
		fs   Features
		want Kind
	}{
		{"low elevation wins over everything", Features{Elevation: 0.05, Moisture: 0.5, Temperature: 0.5}, Ocean},
		{"low elevation with wet hot cell", Features{Elevation: 0.1, Moisture: 0.95, Temperature: 0.9}, Ocean},
		{"very wet land", Features{Elevation: 0.5, Moisture: 0.85, Temperature: 0.1}, Beach},
		{"frozen", Features{Elevation: 0.5, Moisture: 0.5, Temperature: 0.1}, Snow},
		{"cold", Features{Elevation: 0.5, Moisture: 0.5, Temperature: 0.3}, Mountain},
		{"dry", Features{Elevation: 0.5, Moisture: 0.2, Temperature: 0.5}, Desert},
		{"mild", Features{Elevation: 0.5, Moisture: 0.4, Temperature: 0.5}, Plains},
		{"warm and dry-ish", Features{Elevation: 0.5, Moisture: 0.4, Temperature: 0.7}, Grassland},
		{"warm and wet", Features{Elevation: 0.5, Moisture: 0.6, Temperature: 0.7}, Swamp},
		{"moisture on the swamp boundary, high ground", Features{Elevation: 0.5, Moisture: 0.5, Temperature: 0.7}, Forest},
		{"moisture on the swamp boundary, low ground", Features{Elevation: 0.25, Moisture: 0.5, Temperature: 0.7}, Jungle},
		{"thresholds are strict", Features{Elevation: 0.2, Moisture: 0.8, Temperature: 0.6}, Swamp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.fs); got.Kind != tt.want {
				t.Errorf("Classify(%+v) = %s, want %s", tt.fs, got.Kind, tt.want)
			}
		})
	}
}

func TestClassifierFallback(t *testing.T) {
	c, err := NewClassifier(Desert, Below(Elevation, 0.1, Ocean))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.ClassifyKind(Features{Elevation: 0.5}); got != Desert {
		t.Errorf("got %s, want fallback Desert", got)
	}
	if c.Fallback() != Desert {
		t.Errorf("Fallback() = %s", c.Fallback())
	}
}

func TestClassifierFirstMatchWins(t *testing.T) {
	fs := Features{Elevation: 0.1, Moisture: 0.9}
	a, _ := NewClassifier(Plains, Below(Elevation, 0.2, Ocean), Above(Moisture, 0.5, Swamp))
	b, _ := NewClassifier(Plains, Above(Moisture, 0.5, Swamp), Below(Elevation, 0.2, Ocean))
	if got := a.ClassifyKind(fs); got != Ocean {
		t.Errorf("elevation-first order = %s, want Ocean", got)
	}
	if got := b.ClassifyKind(fs); got != Swamp {
		t.Errorf("moisture-first order = %s, want Swamp", got)
	}
}

func TestClassifierDetailRule(t *testing.T) {
	c, _ := NewClassifier(Grassland, Above(Detail, 0.65, Forest))
	if got := c.ClassifyKind(Features{Detail: 0.7}); got != Forest {
		t.Errorf("got %s, want Forest", got)
	}
}

func TestNewClassifierRejectsInvalid(t *testing.T) {
	if _, err := NewClassifier(Kind(NumKinds)); err == nil {
		t.Error("invalid fallback accepted")
	}
	if _, err := NewClassifier(Ocean, Rule{Feature: Elevation, Kind: Kind(99)}); err == nil {
		t.Error("invalid rule kind accepted")
	}
	if _, err := NewClassifier(Ocean, Rule{Feature: Feature(9), Kind: Beach}); err == nil {
		t.Error("invalid feature accepted")
	}
}

func TestClassifierCopiesRules(t *testing.T) {
	rules := []Rule{Below(Elevation, 0.2, Ocean)}
	c, _ := NewClassifier(Plains, rules...)
	rules[0].Kind = Snow

	got := c.Rules()
	if got[0].Kind != Ocean {
		t.Fatal("classifier aliases caller's rules")
	}
	got[0].Kind = Desert
	if c.Rules()[0].Kind != Ocean {
		t.Fatal("Rules() exposes internal slice")
	}
}

func TestRuleString(t *testing.T) {
	if got := Below(Elevation, 0.2, Ocean).String(); got != "elevation<0.2 → Ocean" {
		t.Errorf("String() = %q", got)
	}
	if got := Above(Moisture, 0.8, Beach).String(); got != "moisture>0.8 → Beach" {
		t.Errorf("String() = %q", got)
	}
}
