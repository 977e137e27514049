package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/automoto/platcore/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	configPath := flag.String("config", "", "TOML file overriding physics constants")
	levelPath := flag.String("level", "", "TMX level to load instead of the built-in demo")
	ticks := flag.Int("ticks", 600, "Number of steps to simulate")
	tick := flag.Duration("tick", 16*time.Millisecond, "Elapsed time per step")
	realtime := flag.Bool("realtime", false, "Pace steps with a ticker instead of running flat out")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *tick <= 0 {
		log.Fatalf("Tick must be positive, got %v", *tick)
	}

	w := ecs.NewECS(donburi.NewWorld())
	sim := systems.NewSimulation(w, &LogListener{ecs: w})

	var input func(uint64)
	if *levelPath != "" {
		if err := loadLevel(w, *levelPath); err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	} else {
		input = buildDemo(w).drive
	}

	loop := NewGameLoop(sim, *tick, *ticks, input)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	log.Printf("Simulating %d ticks of %v (realtime: %t)", *ticks, *tick, *realtime)
	if *realtime {
		loop.Run()
	} else {
		loop.RunFast()
	}

	components.Actor.Each(w.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		log.Printf("%s at (%.3f, %.3f) grounded=%t climbing=%t",
			actor.Name, actor.Pos.X, actor.Pos.Y, actor.Grounded(), actor.Climbing())
	})
	log.Printf("Done after %d ticks", sim.Tick())
}
