package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cascade-app/og-image-gen/internal/render"
	"github.com/cascade-app/og-image-gen/internal/scene"
)

// App wires the renderer and the card scene into one run: start, draw,
// serialize, report.
type App struct {
	Render  render.Renderer
	Logger  Logger
	OutPath string
}

func New(renderer render.Renderer, outPath string) *App {
	return &App{Render: renderer, OutPath: outPath, Logger: NoopLogger{}}
}

// Run renders the card and writes the PNG to OutPath. A failure to write
// (unwritable path, missing parent directory) is returned to the caller.
func (app *App) Run(ctx context.Context) error {
	if app.Render == nil {
		app.Render = render.NewImageRenderer()
	}
	if ir, ok := app.Render.(*render.ImageRenderer); ok {
		ir.Logger = app.Logger
	}

	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer app.Render.Stop()

	app.Render.SetScene(scene.New())
	app.Render.Redraw()

	if err := app.Render.WriteFile(app.OutPath); err != nil {
		app.Logger.Errorf("app", "write error: %v", err)
		return err
	}
	app.Logger.Infof("app", "wrote %s", app.OutPath)
	return nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
