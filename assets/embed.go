package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed sfx/*.wav
var assetsFS embed.FS

const sampleRate = 44100

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// Library decodes every sound effect once and replays it on demand.
type Library struct {
	players map[SoundKey]*audio.Player
	volume  float64
}

// NewLibrary decodes the embedded sfx against ctx. Passing a nil context
// creates one at the default sample rate.
func NewLibrary(ctx *audio.Context, volume float64) (*Library, error) {
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	lib := &Library{players: make(map[SoundKey]*audio.Player, len(soundFiles)), volume: volume}
	for key, path := range soundFiles {
		p, err := loadAudioPlayer(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("assets: load sound %s: %w", key, err)
		}
		p.SetVolume(volume)
		lib.players[key] = p
	}
	return lib, nil
}

// Play rewinds and starts the player for key. Unknown keys are ignored.
func (l *Library) Play(key SoundKey) {
	if l == nil {
		return
	}
	p, ok := l.players[key]
	if !ok || p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

func loadAudioPlayer(ctx *audio.Context, path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	clean := strings.ToLower(cleanAssetPath(path))
	reader := bytes.NewReader(b)

	if strings.HasSuffix(clean, ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return ctx.NewPlayerFromBytes(b), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
