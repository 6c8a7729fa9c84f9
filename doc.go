// Package letterfield renders a hero title as individual glyphs that lean
// toward the pointer, for [Ebitengine].
//
// Each glyph is pulled toward the cursor with a force that decays
// exponentially with distance and falls off geometrically with index distance
// from the glyph nearest the cursor. Transitions are eased with [gween]. When
// the pointer leaves the title every glyph springs back to rest, one after
// another.
//
// # Quick start
//
//	font, _ := letterfield.LoadTTFFont(goregular.TTF, 96)
//	title := letterfield.NewTitle("TIPS TIMES", font)
//	title.Align = letterfield.TextAlignCenter
//	title.SetBounds(letterfield.Rect{Y: 160, Height: 140})
//
//	scene := letterfield.NewScene(title, letterfield.DefaultConfig())
//	letterfield.Run(scene, letterfield.RunConfig{
//		Title: "Hero", Width: 960, Height: 540,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update], [Scene.Draw] and [Scene.Resize] directly.
//
// # Engine
//
// [Engine] holds the interaction state machine (idle or active) and talks to
// its surroundings only through [Host], so it can be driven headlessly. A
// pointer move caches glyph centers if the cache is empty, then replaces the
// pending frame callback. Each frame evaluates the force field and requests a
// transition per glyph. A resize clears the cache.
//
// # Page effects
//
// [SmoothScroller], [ScrollRegion] and [Backdrop] cover the rest of the page:
// inertial scrolling, scroll-progress callbacks and a background color that
// follows them. [Clock] formats the nav bar time.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package letterfield
