package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/lumen-app/lumen/internal/engine"
)

type TipCmd struct{}

func (c *TipCmd) Run(ctx *Context) error {
	callCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	fmt.Printf("💡 %s\n", engine.DailyTip(callCtx, ctx.Tips, time.Now()))
	return nil
}
