package assets

// SoundKey names a sound effect. The simulation only ever refers to sounds
// by key; the Library owns the decoded players.
type SoundKey int

const (
	SoundNone SoundKey = iota
	SoundSwing
	SoundHit
	SoundMiss
	SoundHurt
	SoundAlert
	SoundDeath
	SoundPlate
	SoundGate
	SoundDefect
	SoundExit
)

var soundFiles = map[SoundKey]string{
	SoundSwing:  "sfx/swing.wav",
	SoundHit:    "sfx/hit.wav",
	SoundMiss:   "sfx/miss.wav",
	SoundHurt:   "sfx/hurt.wav",
	SoundAlert:  "sfx/alert.wav",
	SoundDeath:  "sfx/death.wav",
	SoundPlate:  "sfx/plate.wav",
	SoundGate:   "sfx/gate.wav",
	SoundDefect: "sfx/defect.wav",
	SoundExit:   "sfx/exit.wav",
}

var soundNames = map[string]SoundKey{
	"swing":  SoundSwing,
	"hit":    SoundHit,
	"miss":   SoundMiss,
	"hurt":   SoundHurt,
	"alert":  SoundAlert,
	"death":  SoundDeath,
	"plate":  SoundPlate,
	"gate":   SoundGate,
	"defect": SoundDefect,
	"exit":   SoundExit,
}

// SoundByName resolves a prefab/script sound name. Unknown names map to
// SoundNone.
func SoundByName(name string) SoundKey {
	return soundNames[name]
}

func (k SoundKey) String() string {
	for name, key := range soundNames {
		if key == k {
			return name
		}
	}
	return "none"
}

// SoundBank plays sounds by key.
type SoundBank interface {
	Play(key SoundKey)
}
