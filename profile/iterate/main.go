// Profiling:
// go build ./profile/iterate
// go tool pprof -http=":8000" -nodefraction=0.001 ./iterate cpu.pprof

package main

import (
	"github.com/edwinsyarief/sparsecs"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		r := sparsecs.NewRegistry(numEntities + 1)
		for range numEntities {
			e := r.CreateEntity()
			sparsecs.AddComponent(r, e, position{})
			sparsecs.AddComponent(r, e, velocity{X: 1, Y: 1})
		}

		velocities := sparsecs.Iterate[velocity](r)
		for range iters {
			for e, pos := range sparsecs.Iterate[position](r).All() {
				vel := velocities.Get(e)
				pos.X += vel.X
				pos.Y += vel.Y
			}
		}
	}
}
