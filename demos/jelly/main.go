// jelly drops two soft squares into the world and lets you drag their nodes
// with the mouse. Space, B and P spawn more bodies.
//
// Set SOFTBODY_SCENARIO to a scenario JSON file to replay scripted input
// before handing control to the mouse.
package main

import (
	"log"
	"os"

	"github.com/phanxgames/softbody"
	"github.com/phanxgames/softbody/internal/config"
	"github.com/phanxgames/softbody/view"
)

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	cfg := env.World()
	world := softbody.NewWorld(cfg)

	square := softbody.Square(cfg.DefaultRestingLength)
	world.Spawn(square, softbody.Vec2{X: -cfg.DefaultRestingLength})
	world.Spawn(square, softbody.Vec2{X: cfg.DefaultRestingLength * 0.5, Y: cfg.DefaultRestingLength * 1.5})

	g := view.NewGame(world, view.RunConfig{
		Title:   "Soft Bodies",
		Width:   int(cfg.Width),
		Height:  int(cfg.Height),
		ShowFPS: env.ShowFPS,
		Debug:   env.Debug,
	})

	if env.Scenario != "" {
		data, err := os.ReadFile(env.Scenario)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := softbody.LoadScenario(data)
		if err != nil {
			log.Fatal(err)
		}
		g.SetScenario(runner)
	}

	if err := view.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
