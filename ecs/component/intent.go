package component

import "github.com/milk9111/turncoat/common"

// ActorIntent is what an actor wants to do this frame. Movement keeps its
// analog magnitude (length <= 1). Attack is set for exactly one frame and
// cleared by the intent application pass.
type ActorIntent struct {
	Movement common.Vec2
	Attack   *common.Vec2
}

var ActorIntentComponent = NewComponent[ActorIntent]()
