package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cascade-app/og-image-gen/internal/app"
	"github.com/cascade-app/og-image-gen/internal/render"
)

const defaultOutPath = "public/images/og-image.png"

func main() {
	// Flags
	out := flag.String("out", defaultOutPath, "destination path for the generated PNG")
	debug := flag.Bool("debug", false, "enable debug logging to ./og-image-gen-debug.log")
	flag.Parse()

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./og-image-gen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := app.New(render.NewImageRenderer(), *out)
	a.Logger = logger

	if err := a.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OG image generated successfully at %s\n", *out)
}
