package ecs

import (
	"github.com/phanxgames/punkui"

	"github.com/yohamta/donburi"
)

// ElementSystem projects every element entity with its rule.
func ElementSystem(w donburi.World, t punkui.Tree) {
	elementQuery.Each(w, func(entry *donburi.Entry) {
		path := WidgetComponent.Get(entry).Path
		rule := ElementComponent.Get(entry).Rule
		TransformComponent.Get(entry).Placement = punkui.ResolveWithRule(t, path, rule)
	})
}

// ImageSystem stretches every image entity over its widget.
func ImageSystem(w donburi.World, t punkui.Tree) {
	imageQuery.Each(w, func(entry *donburi.Entry) {
		path := WidgetComponent.Get(entry).Path
		native := ImageComponent.Get(entry).NativeSize
		TransformComponent.Get(entry).Placement = punkui.ResolveImage(t, path, native)
	})
}

// Sync runs the element pass then the image pass. An entity carrying both
// an Element and an Image ends up with the image placement.
func Sync(w donburi.World, t punkui.Tree) {
	ElementSystem(w, t)
	ImageSystem(w, t)
}
