package resource

// Tuning holds the global gameplay constants loaded from tuning.yaml.
type Tuning struct {
	HurtAlarm      float64 `yaml:"hurt_alarm"`
	DeathAlarm     float64 `yaml:"death_alarm"`
	DetectAlarm    float64 `yaml:"detect_alarm"`
	DefectionAlarm float64 `yaml:"defection_alarm"`

	// KnockbackScale multiplies a hitbox's knockback vector into the
	// velocity written on the target.
	KnockbackScale  float64 `yaml:"knockback_scale"`
	CorpseMassScale float64 `yaml:"corpse_mass_scale"`

	AlertPopupTTL     float64 `yaml:"alert_popup_ttl"`
	AlertPopupOffsetY float64 `yaml:"alert_popup_offset_y"`
	FlinchDuration    float64 `yaml:"flinch_duration"`
	LungeDuration     float64 `yaml:"lunge_duration"`
}

// DefaultTuning is used when tuning.yaml is missing or incomplete.
func DefaultTuning() Tuning {
	return Tuning{
		HurtAlarm:         0.05,
		DeathAlarm:        0.1,
		DetectAlarm:       0.02,
		DefectionAlarm:    0.35,
		KnockbackScale:    40,
		CorpseMassScale:   10,
		AlertPopupTTL:     0.8,
		AlertPopupOffsetY: -24,
		FlinchDuration:    0.2,
		LungeDuration:     0.15,
	}
}
