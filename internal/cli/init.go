package cli

import (
	"fmt"
	"time"

	"github.com/lumen-app/lumen/internal/engine"
)

type InitCmd struct {
	Empty bool `help:"Skip the starter habits and challenge."`
}

func (c *InitCmd) Run(ctx *Context) error {
	seed := engine.SeedState(time.Now())
	if c.Empty {
		seed = engine.State{Stats: seed.Stats}
	}

	if err := ctx.Store.Init(seed); err != nil {
		return err
	}
	fmt.Printf("Initialized lumen storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
