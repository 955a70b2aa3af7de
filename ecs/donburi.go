package ecs

import (
	"github.com/phanxgames/pixelcam"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ZoomData configures how a camera entity's zoom factor is derived from the
// window size.
type ZoomData struct {
	Target pixelcam.Zoom
}

// ProjectionData holds the resolved zoom factor and viewport for a camera
// entity. Written by [UpdateCameras]; treat as read-only elsewhere.
type ProjectionData struct {
	Factor   int
	Viewport pixelcam.Viewport
}

var (
	// PixelZoom marks an entity as a pixel camera and names its zoom policy.
	PixelZoom = donburi.NewComponentType[ZoomData]()

	// PixelViewport requests letterboxing: the resolved viewport confines
	// rendering to the target resolution. Without it the viewport spans the
	// full window.
	PixelViewport = donburi.NewTag().SetName("PixelViewport")

	// Projection receives the resolved factor and viewport. UpdateCameras
	// adds it to camera entities that don't have it yet.
	Projection = donburi.NewComponentType[ProjectionData]()
)

// CameraResized is published whenever a camera entity's resolved factor or
// viewport changes.
type CameraResized struct {
	Entity   donburi.Entity
	Factor   int
	Viewport pixelcam.Viewport
}

// CameraResizedEvent is the Donburi event type for camera projection changes.
// Subscribe in your render system to rebuild projection state only when
// needed; call ProcessEvents to flush the queue.
var CameraResizedEvent = events.NewEventType[CameraResized]()

var cameraQuery = donburi.NewQuery(filter.Contains(PixelZoom))

// UpdateCameras resolves zoom and viewport for every camera entity against
// the given window size in physical pixels, updates each entity's
// [Projection] component, and publishes [CameraResized] events for entities
// whose values changed.
//
// The resolution is pure and cheap, so calling this unconditionally every
// frame is fine; events fire only on actual change.
func UpdateCameras(w donburi.World, windowW, windowH int) {
	cameraQuery.Each(w, func(entry *donburi.Entry) {
		target := PixelZoom.Get(entry).Target
		if target == nil {
			target = pixelcam.Fixed(1)
		}

		factor := target.Resolve(windowW, windowH)
		viewport := pixelcam.Viewport{Width: windowW, Height: windowH}
		if entry.HasComponent(PixelViewport) {
			factor, viewport = pixelcam.Resolve(target, windowW, windowH)
		}
		next := ProjectionData{Factor: factor, Viewport: viewport}

		if !entry.HasComponent(Projection) {
			donburi.Add(entry, Projection, &next)
		} else if *Projection.Get(entry) == next {
			return
		} else {
			Projection.SetValue(entry, next)
		}

		CameraResizedEvent.Publish(w, CameraResized{
			Entity:   entry.Entity(),
			Factor:   next.Factor,
			Viewport: next.Viewport,
		})
	})
}
