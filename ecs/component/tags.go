package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

// Corpse marks a dead actor. The entity stays in the world.
type Corpse struct{}

var CorpseComponent = NewComponent[Corpse]()

// GameRoot parents every entity that belongs to the current life.
type GameRoot struct{}

var GameRootComponent = NewComponent[GameRoot]()

type AlertPopup struct{}

var AlertPopupComponent = NewComponent[AlertPopup]()

// Visual marks an actor's cosmetic child (sprite holder, animation target).
type Visual struct{}

var VisualComponent = NewComponent[Visual]()
