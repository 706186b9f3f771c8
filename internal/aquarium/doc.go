// Package aquarium provides the simulation core of the ASCII aquarium.
//
//   - [Grid]: the rows × cols character buffer redrawn every frame
//   - [Fish], [Bubble], [Seaweed]: entities with simulated motion
//   - [Scene]: the simulation context owning grid, entities and randomness
//
// # Example
//
//	rnd := rand.New(rand.NewSource(1))
//	scene := aquarium.NewScene(80, 24, palette.Reef, rnd)
//	scene.Step(time.Now())
//	markup := render.HTML{}.Encode(scene.Grid)
//
// # Thread Safety
//
// Scene instances are NOT thread-safe. A single goroutine, normally the
// driver loop, owns each scene.
package aquarium
