package gamedata

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Registry holds the loaded static game configuration.
type Registry struct {
	gyms     []Gym
	trainers []Trainer
	starters []StarterOption

	gymByUnit   map[string]Gym
	trainerByID map[string]Trainer
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the registry built from the embedded data files.
// The files ship with the binary, so a failure here is a build defect.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = load()
	})
	return defaultReg, defaultErr
}

func load() (*Registry, error) {
	r := &Registry{
		gymByUnit:   make(map[string]Gym),
		trainerByID: make(map[string]Trainer),
	}

	gymBytes, err := dataFS.ReadFile("data/gyms.json")
	if err != nil {
		return nil, fmt.Errorf("read gyms data: %w", err)
	}
	if err := validate("gyms", gymsSchema, gymBytes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(gymBytes, &r.gyms); err != nil {
		return nil, fmt.Errorf("decode gyms data: %w", err)
	}

	trainerBytes, err := dataFS.ReadFile("data/trainers.json")
	if err != nil {
		return nil, fmt.Errorf("read trainers data: %w", err)
	}
	if err := validate("trainers", trainersSchema, trainerBytes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(trainerBytes, &r.trainers); err != nil {
		return nil, fmt.Errorf("decode trainers data: %w", err)
	}

	starterBytes, err := dataFS.ReadFile("data/starters.json")
	if err != nil {
		return nil, fmt.Errorf("read starters data: %w", err)
	}
	if err := validate("starters", startersSchema, starterBytes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(starterBytes, &r.starters); err != nil {
		return nil, fmt.Errorf("decode starters data: %w", err)
	}

	for _, g := range r.gyms {
		if _, dup := r.gymByUnit[g.Unit]; dup {
			return nil, fmt.Errorf("duplicate gym for unit %s", g.Unit)
		}
		r.gymByUnit[g.Unit] = g
	}
	for _, t := range r.trainers {
		if _, dup := r.trainerByID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate trainer id %s", t.ID)
		}
		r.trainerByID[t.ID] = t
	}

	return r, nil
}

// validate checks raw JSON against a schema definition.
func validate(name string, schema map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse %s data: %w", name, err)
	}

	defBytes, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal %s schema: %w", name, err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return fmt.Errorf("parse %s schema: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return fmt.Errorf("add %s schema: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return fmt.Errorf("compile %s schema: %w", name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%s data invalid: %w", name, err)
	}
	return nil
}

// Gyms returns all gyms in unit order as shipped.
func (r *Registry) Gyms() []Gym {
	out := make([]Gym, len(r.gyms))
	copy(out, r.gyms)
	return out
}

// GymByUnit looks up the gym for a normalized unit.
func (r *Registry) GymByUnit(unit string) (Gym, bool) {
	g, ok := r.gymByUnit[unit]
	return g, ok
}

// Trainers returns all trainers as shipped.
func (r *Registry) Trainers() []Trainer {
	out := make([]Trainer, len(r.trainers))
	copy(out, r.trainers)
	return out
}

// TrainerByID looks up a trainer.
func (r *Registry) TrainerByID(id string) (Trainer, bool) {
	t, ok := r.trainerByID[id]
	return t, ok
}

// Starters returns the first-run companion options.
func (r *Registry) Starters() []StarterOption {
	out := make([]StarterOption, len(r.starters))
	copy(out, r.starters)
	return out
}
