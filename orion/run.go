package orion

import (
	"fmt"

	"github.com/oliverbestmann/meme/physics"
	"github.com/oliverbestmann/meme/scene"
)

// Run runs the engine with the default physics world and scene until
// the window is closed. The backend named in config must have been registered,
// usually by importing its package.
func Run(config EngineConfig) error {
	loop, err := NewLoop(LoopOptions{
		Config:  config,
		Physics: physics.New(),
		Scene:   scene.New(),
	})
	if err != nil {
		return fmt.Errorf("create loop: %w", err)
	}

	return loop.Run()
}
