package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/turncoat/common"
	"github.com/milk9111/turncoat/prefabs"
)

// alertScriptInput is exposed to alert scripts as globals.
type alertScriptInput struct {
	Alarm  float64
	Kills  int
	Enemy  common.Vec2
	Target common.Vec2
}

// alertScriptOutput is read back from the script globals `alarm_bonus`
// and `bark` after it runs.
type alertScriptOutput struct {
	AlarmBonus float64
	Bark       string
}

// alertScripts compiles each script once and runs a clone per alert so
// enemies sharing a script never share globals.
type alertScripts struct {
	compiled map[string]*tengo.Compiled
}

func newAlertScripts() *alertScripts {
	return &alertScripts{compiled: map[string]*tengo.Compiled{}}
}

func (a *alertScripts) run(path string, in alertScriptInput) (alertScriptOutput, error) {
	var out alertScriptOutput

	base, err := a.load(path)
	if err != nil {
		return out, err
	}
	c := base.Clone()

	vars := map[string]any{
		"alarm":    in.Alarm,
		"kills":    in.Kills,
		"enemy_x":  in.Enemy.X,
		"enemy_y":  in.Enemy.Y,
		"target_x": in.Target.X,
		"target_y": in.Target.Y,
	}
	for name, v := range vars {
		if err := c.Set(name, v); err != nil {
			return out, fmt.Errorf("set %s: %w", name, err)
		}
	}
	if err := c.Run(); err != nil {
		return out, err
	}

	if c.IsDefined("alarm_bonus") {
		out.AlarmBonus = c.Get("alarm_bonus").Float()
	}
	if c.IsDefined("bark") {
		out.Bark = strings.TrimSpace(c.Get("bark").String())
	}
	return out, nil
}

func (a *alertScripts) load(path string) (*tengo.Compiled, error) {
	if c, ok := a.compiled[path]; ok {
		return c, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("alarm", 0.0)
	_ = script.Add("kills", 0)
	_ = script.Add("enemy_x", 0.0)
	_ = script.Add("enemy_y", 0.0)
	_ = script.Add("target_x", 0.0)
	_ = script.Add("target_y", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	a.compiled[path] = compiled
	return compiled, nil
}
