package sparsecs

import (
	"fmt"
	"testing"
)

type benchPos struct{ X, Y float64 }
type benchVel struct{ VX, VY float64 }

func benchSizes() []int {
	return []int{1000, 10000, 100000}
}

func sizeName(size int) string {
	return fmt.Sprintf("%dK", size/1000)
}

// go test -bench ^BenchmarkAddComponent$ -run ^$ .
func BenchmarkAddComponent(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				r := NewRegistry(size)
				entities := make([]EntityID, size-1)
				for i := range entities {
					entities[i] = r.CreateEntity()
				}
				b.StartTimer()
				for _, e := range entities {
					AddComponent(r, e, benchPos{X: 1, Y: 2})
				}
			}
			b.ReportAllocs()
		})
	}
}

// go test -bench ^BenchmarkHasComponent$ -run ^$ .
func BenchmarkHasComponent(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			r := NewRegistry(size)
			entities := make([]EntityID, size-1)
			for i := range entities {
				entities[i] = r.CreateEntity()
				AddComponent(r, entities[i], benchPos{})
			}
			b.ResetTimer()
			for b.Loop() {
				for _, e := range entities {
					if !HasComponent[benchPos](r, e) {
						b.Fatal("missing component")
					}
				}
			}
			b.ReportAllocs()
		})
	}
}

// go test -bench ^BenchmarkIterate$ -run ^$ .
func BenchmarkIterate(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			r := NewRegistry(size)
			for i := 0; i < size-1; i++ {
				e := r.CreateEntity()
				AddComponent(r, e, benchPos{X: 1})
				AddComponent(r, e, benchVel{VX: 1})
			}
			vels := Iterate[benchVel](r)
			b.ResetTimer()
			for b.Loop() {
				for e, v := range Iterate[benchPos](r).All() {
					if vels.Has(e) {
						vel := vels.Get(e)
						v.X += vel.VX
						v.Y += vel.VY
					}
				}
			}
			b.ReportAllocs()
		})
	}
}

// go test -bench ^BenchmarkAddRemoveChurn$ -run ^$ .
func BenchmarkAddRemoveChurn(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			r := NewRegistry(size)
			entities := make([]EntityID, size-1)
			for i := range entities {
				entities[i] = r.CreateEntity()
			}
			pool := Iterate[benchPos](r)
			b.ResetTimer()
			for b.Loop() {
				for _, e := range entities {
					pool.Add(e, benchPos{})
				}
				for _, e := range entities {
					pool.Remove(e)
				}
			}
			b.ReportAllocs()
		})
	}
}

// go test -bench ^BenchmarkCreateDeleteEntity$ -run ^$ .
func BenchmarkCreateDeleteEntity(b *testing.B) {
	for _, size := range benchSizes() {
		b.Run(sizeName(size), func(b *testing.B) {
			r := NewRegistry(size)
			AddComponent(r, r.CreateEntity(), benchPos{})
			AddComponent(r, r.CreateEntity(), benchVel{})
			churn := size / 2
			entities := make([]EntityID, 0, churn)
			b.ResetTimer()
			for b.Loop() {
				entities = entities[:0]
				for i := 0; i < churn; i++ {
					entities = append(entities, r.CreateEntity())
				}
				for _, e := range entities {
					r.DeleteEntity(e)
				}
			}
			b.ReportAllocs()
		})
	}
}
