// Package rng provides the per-worker standard-normal generators and the seed
// hierarchy used to give every worker an independent stream.
package rng

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is anything that draws standard-normal variates. distuv.Normal with
// Mu 0 and Sigma 1 is the implementation used throughout the module.
type Normal interface {
	Rand() float64
}

// Generator draws from one Normal. It is not safe for concurrent use: every
// worker builds its own and drops it when its chunk is done.
type Generator struct {
	normal Normal
}

func NewGenerator(n Normal) *Generator {
	return &Generator{normal: n}
}

// Standard returns a generator drawing N(0, 1) values from src.
func Standard(src rand.Source) *Generator {
	return NewGenerator(distuv.Normal{Mu: 0, Sigma: 1, Src: src})
}

func (g *Generator) Draw() float64 {
	return g.normal.Rand()
}

// Fill overwrites every element of dst with a fresh draw.
func (g *Generator) Fill(dst []float64) {
	for i := range dst {
		dst[i] = g.normal.Rand()
	}
}
