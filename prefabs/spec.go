package prefabs

import (
	"fmt"

	"github.com/milk9111/turncoat/ecs/resource"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DecodeProps converts loosely typed level properties into a spec struct
// by round-tripping them through YAML, so level props and prefab files
// share field names.
func DecodeProps[T any](raw map[string]any) (T, error) {
	var zero T
	if len(raw) == 0 {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type MovementSpec struct {
	Speed             float64 `yaml:"speed"`
	Acceleration      float64 `yaml:"acceleration"`
	BrakeDeceleration float64 `yaml:"brake_deceleration"`
	IdleThreshold     float64 `yaml:"idle_threshold"`
}

type BodySpec struct {
	Radius   float64 `yaml:"radius"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type AttackSpec struct {
	Damage    float64 `yaml:"damage"`
	Knockback float64 `yaml:"knockback"`
	Reach     float64 `yaml:"reach"`
	Radius    float64 `yaml:"radius"`
	HitSound  string  `yaml:"hit_sound"`
	MissSound string  `yaml:"miss_sound"`
}

// ActorSpec is the part shared by the player and every enemy variant.
type ActorSpec struct {
	Name     string       `yaml:"name"`
	Health   float64      `yaml:"health"`
	Movement MovementSpec `yaml:"movement"`
	Body     BodySpec     `yaml:"body"`
	Attack   AttackSpec   `yaml:"attack"`
}

type PlayerSpec struct {
	ActorSpec `yaml:",inline"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CurveSpec struct {
	AtZero float64 `yaml:"at_zero"`
	AtMax  float64 `yaml:"at_max"`
}

type DifficultySpec struct {
	Speed          CurveSpec `yaml:"speed"`
	DetectRadius   CurveSpec `yaml:"detect_radius"`
	FollowRadius   CurveSpec `yaml:"follow_radius"`
	AttackRadius   CurveSpec `yaml:"attack_radius"`
	AttackCooldown CurveSpec `yaml:"attack_cooldown"`
}

type EnemyVariantSpec struct {
	ActorSpec   `yaml:",inline"`
	Difficulty  DifficultySpec `yaml:"difficulty"`
	AlertScript string         `yaml:"alert_script"`
}

// EnemySpec lists every enemy variant; levels pick one by name.
type EnemySpec struct {
	Default  string                      `yaml:"default"`
	Variants map[string]EnemyVariantSpec `yaml:"variants"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Variant returns the named variant, or the default one for an empty
// name.
func (s *EnemySpec) Variant(name string) (EnemyVariantSpec, error) {
	if s == nil {
		return EnemyVariantSpec{}, fmt.Errorf("prefabs: nil enemy spec")
	}
	if name == "" {
		name = s.Default
	}
	v, ok := s.Variants[name]
	if !ok {
		return EnemyVariantSpec{}, fmt.Errorf("prefabs: unknown enemy variant %q", name)
	}
	if v.Name == "" {
		v.Name = name
	}
	return v, nil
}

// LoadTuning reads tuning.yaml; missing fields fall back to the defaults.
func LoadTuning() (resource.Tuning, error) {
	data, err := Load("tuning.yaml")
	if err != nil {
		return resource.DefaultTuning(), fmt.Errorf("prefabs: load tuning.yaml: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes over DefaultTuning, so a key left out keeps its
// default and an explicit zero turns that contributor off.
func ParseTuning(data []byte) (resource.Tuning, error) {
	tuning := resource.DefaultTuning()
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return resource.DefaultTuning(), fmt.Errorf("prefabs: unmarshal tuning.yaml: %w", err)
	}
	return tuning, nil
}

type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
