package game

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hatch/telemetry"
	"github.com/pthm-cable/hatch/ui"
)

// Draw renders the loading screen or the world, then the overlays.
func (g *Game) Draw() {
	rl.BeginDrawing()

	if !g.Playing() {
		var failure string
		if g.loadErr != nil {
			failure = g.loadErr.Error()
		}
		loaded, total := g.loader.Count()
		g.loading.Draw(int32(g.screenWidth), int32(g.screenHeight), loaded, total, failure)
		rl.EndDrawing()
		return
	}

	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.canvas.Begin()
	g.world.Render(g.canvas)

	if g.debugMode {
		g.drawDebug()
	}

	rl.EndDrawing()

	g.perfCollector.EndFrame(frameTime())
	g.frame++
	g.flushPerf()
}

// drawDebug draws the debug overlay and the key legend.
func (g *Game) drawDebug() {
	sum := g.session.Summary()
	data := ui.HUDData{
		FPS:          rl.GetFPS(),
		ScreenWidth:  int32(g.screenWidth),
		ScreenHeight: int32(g.screenHeight),
		Clock:        g.world.Clock(),
		Resting:      g.world.Resting().String(),
		Clicks:       sum.Clicks,
		Stages:       sum.Stages,
		Restarts:     sum.Restarts,
	}
	if t := g.world.Active(); t != nil {
		data.Transition = t.From().String() + " > " + t.Goal().String() + " (" + t.Kind().String() + ")"
		data.Progress = t.Fraction()
	}

	var inputs []string
	for _, b := range g.world.EnabledButtons() {
		inputs = append(inputs, b.Input.String())
	}
	data.Inputs = strings.Join(inputs, ", ")
	if data.Inputs == "" {
		data.Inputs = "-"
	}

	g.hud.Draw(data)
	g.hud.DrawControls(int32(g.screenHeight), "D: Debug | F11: Fullscreen")
}
