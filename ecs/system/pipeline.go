package system

import (
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/resource"
)

// Stage names in run order.
const (
	StageIntake       = "intake"
	StageDifficulty   = "difficulty"
	StageIntent       = "intent"
	StageApply        = "apply"
	StagePhysics      = "physics"
	StageCombat       = "combat"
	StageHousekeeping = "housekeeping"
)

type PipelineOptions struct {
	Input  InputSource
	Sounds assets.SoundBank
	// ViewWidth and ViewHeight size the camera view; zero disables the
	// camera system.
	ViewWidth  float64
	ViewHeight float64
}

// Pipeline is the per-frame schedule. A few systems are exposed so the
// game can draw debug shapes, swap input sources and reload scripts.
type Pipeline struct {
	*ecs.Scheduler
	Physics *PhysicsSystem
	Input   *PlayerInputSystem
	Alert   *EnemyAlertSystem
}

func NewPipeline(state *resource.State, opts PipelineOptions) *Pipeline {
	p := &Pipeline{
		Scheduler: ecs.NewScheduler(),
		Physics:   NewPhysicsSystem(state),
		Input:     NewPlayerInputSystem(state, opts.Input),
		Alert:     NewEnemyAlertSystem(state),
	}

	p.Add(StageIntake, NewCollisionIntakeSystem(state))
	p.Add(StageDifficulty, NewDifficultySystem(state))
	p.Add(StageIntent, p.Input, NewEnemyAISystem(state))
	p.Add(StageApply, NewIntentApplySystem(state))
	p.Add(StagePhysics, p.Physics, NewFollowSystem())
	p.Add(StageCombat,
		NewHitResolutionSystem(state),
		NewHurtAlarmSystem(state),
		p.Alert,
		NewDeathSystem(state),
		NewHitboxCleanupSystem(state),
		NewPlateSystem(state),
		NewGateSystem(),
		NewLevelFlowSystem(state),
	)
	p.Add(StageHousekeeping,
		NewLifetimeSystem(state),
		NewAnimationSystem(state),
		NewDespawnFlushSystem(state),
	)
	if opts.ViewWidth > 0 && opts.ViewHeight > 0 {
		p.Add(StageHousekeeping, NewCameraSystem(opts.ViewWidth, opts.ViewHeight))
	}
	p.Add(StageHousekeeping,
		NewAudioSystem(state, opts.Sounds),
		NewEventUpdateSystem(state),
	)
	return p
}
