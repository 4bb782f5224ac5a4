// Package punkui projects a widget layout tree onto a retained 2D scene
// graph for [Ebitengine] game menus.
//
// A [Hierarchy] resolves widget rectangles from [Layout] values (relative,
// window and fixed-aspect solid boxes). The projector turns a widget into a
// [Placement]: a position in a space centered on the window with Y growing
// upward, a scale and a depth. Nodes bound to widgets with [Scene.Bind] or
// [Scene.BindImage] receive their placement every update.
//
// # Quick start
//
//	h := punkui.NewHierarchy("ui", 1280, 720)
//	menu, _ := h.Create("main_menu", punkui.FullLayout())
//	menu.SetVisible(true)
//	board, _ := h.Create("main_menu/board", punkui.SolidLayout{
//		Width: 807, Height: 1432, AnchorX: -0.8, Scaling: punkui.SolidFit,
//	})
//
//	scene := punkui.NewScene(h)
//	scene.BindImage(punkui.NewSprite("board", boardImage), board.FullPath())
//	punkui.Run(ctx, scene, punkui.RunConfig{Title: "Bevypunk", Width: 1280, Height: 720})
//
// # Projection
//
// [ProjectPlain], [ProjectImage] and [ProjectRule] return the failure that
// sent an element offscreen; [ResolvePlain], [ResolveImage] and
// [ResolveWithRule] drop it. A missing, hidden or unsized widget always
// yields [Offscreen].
//
// # Scene
//
// Each [Scene.Update] runs input handlers, tweens and effects, recomputes
// the layout, then runs the element pass followed by the image pass. Draw
// sorts nodes by depth and maps the projected space to screen pixels.
//
// Hover animations use widget data slots ([Widget.SetData]) read by effects
// such as [ColorHighlight] and [AnimateWidget], eased with [gween].
//
// The ecs subpackage stores the same projections in a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package punkui
