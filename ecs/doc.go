// Package ecs stores projected elements in a [Donburi] world.
//
// Entities carry a [Widget] path and either an [Element] scaling rule or an
// [Image] native size. [Sync] resolves them against a layout tree and writes
// the result into their [Transform], element pass first, image pass second.
//
//	world := donburi.NewWorld()
//	e := ecs.SpawnImage(world, "main_menu/board", punkui.Vec2{X: 807, Y: 1432})
//	ecs.Sync(world, hierarchy)
//	p, _ := ecs.PlacementOf(world, e)
//
// [NewDonburiStore] bridges scene interaction events into the same world:
//
//	scene.SetEntityStore(ecs.NewDonburiStore(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
