package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Stage is an ordered group of systems. Every system of a stage has run
// before the next stage starts.
type Stage struct {
	Name    string
	systems []System
}

// Systems returns a copy of the systems registered in the stage.
func (s *Stage) Systems() []System {
	return append([]System(nil), s.systems...)
}

type Scheduler struct {
	stages []*Stage
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Stage returns the named stage, appending it to the run order when it does
// not exist yet.
func (s *Scheduler) Stage(name string) *Stage {
	for _, st := range s.stages {
		if st.Name == name {
			return st
		}
	}
	st := &Stage{Name: name}
	s.stages = append(s.stages, st)
	return st
}

// Add appends systems to the named stage.
func (s *Scheduler) Add(stage string, systems ...System) {
	st := s.Stage(stage)
	for _, system := range systems {
		if system == nil {
			continue
		}
		st.systems = append(st.systems, system)
	}
}

func (s *Scheduler) Update(w *World) {
	for _, st := range s.stages {
		for _, system := range st.systems {
			system.Update(w)
		}
	}
}

// Stages returns the stage names in run order.
func (s *Scheduler) Stages() []string {
	names := make([]string, 0, len(s.stages))
	for _, st := range s.stages {
		names = append(names, st.Name)
	}
	return names
}
