package main

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/platcore/systems"
)

// GameLoop steps the simulation a fixed number of times, calling input before
// each step so scripted actors can set their forces.
type GameLoop struct {
	sim      *systems.Simulation
	interval time.Duration
	ticks    int
	input    func(tick uint64)

	stopOnce sync.Once
	stopChan chan struct{}
}

func NewGameLoop(sim *systems.Simulation, interval time.Duration, ticks int, input func(uint64)) *GameLoop {
	return &GameLoop{
		sim:      sim,
		interval: interval,
		ticks:    ticks,
		input:    input,
		stopChan: make(chan struct{}),
	}
}

// Run paces steps with a ticker at the configured interval.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Printf("Game loop started at %v per tick", g.interval)

	for !g.done() {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// RunFast steps as quickly as possible.
func (g *GameLoop) RunFast() {
	for !g.done() {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		default:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) done() bool {
	return g.sim.Tick() >= uint64(g.ticks)
}

func (g *GameLoop) tick() {
	if g.input != nil {
		g.input(g.sim.Tick())
	}
	g.sim.Step(g.interval)
}
