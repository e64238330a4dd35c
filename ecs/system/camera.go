package system

import (
	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
)

type CameraSystem struct {
	camEntity ecs.Entity
	viewW     float64
	viewH     float64
}

func NewCameraSystem(viewW, viewH float64) *CameraSystem {
	return &CameraSystem{viewW: viewW, viewH: viewH}
}

// Update moves the camera so the player sits in the middle of the view.
func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	wantX := target.X - cs.viewW/(2*zoom)
	wantY := target.Y - cs.viewH/(2*zoom)

	t := cam.Smoothness
	if t <= 0 || t > 1 {
		t = 1
	}
	camTransform.X += (wantX - camTransform.X) * t
	camTransform.Y += (wantY - camTransform.Y) * t
}

// CameraView returns the camera's top-left world position and zoom.
func CameraView(w *ecs.World) (x, y, zoom float64) {
	zoom = 1
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return 0, 0, zoom
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	return x, y, zoom
}
