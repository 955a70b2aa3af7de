// Package ecs provides Donburi bindings for pixelcam.
//
// Camera entities carry a [PixelZoom] component naming the zoom policy, and
// optionally the [PixelViewport] tag to request letterboxing. Each frame (or
// on window resize) call [UpdateCameras] with the current window size: it
// resolves the zoom factor and viewport for every camera entity, writes them
// into the entity's [Projection] component, and publishes a [CameraResized]
// event for each camera whose values actually changed.
//
// Usage:
//
//	entity := world.Create(ecs.PixelZoom, ecs.PixelViewport)
//	entry := world.Entry(entity)
//	ecs.PixelZoom.SetValue(entry, ecs.ZoomData{
//		Target: pixelcam.FitSize{Width: 320, Height: 180},
//	})
//
//	// once per frame, e.g. from ebiten.Game.Layout:
//	ecs.UpdateCameras(world, windowW, windowH)
//	ecs.CameraResizedEvent.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
