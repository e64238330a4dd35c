package component

// Exit moves the playthrough to the next level when the player touches it.
type Exit struct {
	// Target overrides the next level name; empty means "next in order".
	Target string
}

var ExitComponent = NewComponent[Exit]()

// VictoryZone ends the playthrough in a win.
type VictoryZone struct{}

var VictoryZoneComponent = NewComponent[VictoryZone]()

// DefectionSwitch is the one-time switch that turns the player against the
// facility.
type DefectionSwitch struct {
	Used bool
}

var DefectionSwitchComponent = NewComponent[DefectionSwitch]()
