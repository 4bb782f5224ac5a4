package ecs

import (
	"github.com/phanxgames/punkui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Widget links an entity to the widget it is projected onto.
type Widget struct {
	Path string
}

// Element marks an entity projected with a scaling rule.
type Element struct {
	Rule punkui.ElementRule
}

// Image marks an entity stretched over its whole widget. NativeSize is the
// image's pixel size; zero means the asset is not loaded yet.
type Image struct {
	NativeSize punkui.Vec2
}

// Transform holds the latest projection result.
type Transform struct {
	Placement punkui.Placement
}

var (
	WidgetComponent    = donburi.NewComponentType[Widget]()
	ElementComponent   = donburi.NewComponentType[Element]()
	ImageComponent     = donburi.NewComponentType[Image]()
	TransformComponent = donburi.NewComponentType[Transform]()
)

var (
	elementQuery = donburi.NewQuery(filter.Contains(WidgetComponent, ElementComponent, TransformComponent))
	imageQuery   = donburi.NewQuery(filter.Contains(WidgetComponent, ImageComponent, TransformComponent))
)

// SpawnElement creates an element entity for the widget at path.
func SpawnElement(w donburi.World, path string, rule punkui.ElementRule) donburi.Entity {
	e := w.Create(WidgetComponent, ElementComponent, TransformComponent)
	entry := w.Entry(e)
	WidgetComponent.SetValue(entry, Widget{Path: path})
	ElementComponent.SetValue(entry, Element{Rule: rule})
	TransformComponent.SetValue(entry, Transform{Placement: punkui.Offscreen})
	return e
}

// SpawnImage creates an image entity for the widget at path.
func SpawnImage(w donburi.World, path string, native punkui.Vec2) donburi.Entity {
	e := w.Create(WidgetComponent, ImageComponent, TransformComponent)
	entry := w.Entry(e)
	WidgetComponent.SetValue(entry, Widget{Path: path})
	ImageComponent.SetValue(entry, Image{NativeSize: native})
	TransformComponent.SetValue(entry, Transform{Placement: punkui.Offscreen})
	return e
}

// PlacementOf returns the stored placement of e, and false when e is not a
// projected entity.
func PlacementOf(w donburi.World, e donburi.Entity) (punkui.Placement, bool) {
	if !w.Valid(e) {
		return punkui.Placement{}, false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(TransformComponent) {
		return punkui.Placement{}, false
	}
	return TransformComponent.Get(entry).Placement, true
}
