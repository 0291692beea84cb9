package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/gofault/internal/app"
)

func main() {
	application := app.New()
	<-application.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application.Stop(ctx)
}
