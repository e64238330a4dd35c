package entity

import (
	"fmt"

	"github.com/milk9111/turncoat/ecs"
	"github.com/milk9111/turncoat/ecs/component"
	"github.com/milk9111/turncoat/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := cameraSpec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	smooth := cameraSpec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       zoom,
		Smoothness: smooth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
