// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/sparsecs"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		r := sparsecs.NewRegistry(numEntities + 1)

		for range iters {
			entities := make([]sparsecs.EntityID, 0, numEntities)
			for range numEntities {
				e := r.CreateEntity()
				sparsecs.AddComponent(r, e, comp1{V: 1, W: 2})
				sparsecs.AddComponent(r, e, comp2{V: 3, W: 4})
				entities = append(entities, e)
			}
			for _, e := range entities {
				r.DeleteEntity(e)
			}
		}
	}
}
