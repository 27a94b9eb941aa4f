package game

import "github.com/pthm-cable/hatch/telemetry"

// updateHeadless runs one fixed-step frame with the autoplay bot clicking.
func (g *Game) updateHeadless() {
	dt := 1 / float32(g.cfg.Screen.TargetFPS)

	g.perfCollector.StartFrame()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.world.HandleInput(g.bot.Next(g.world.EnabledButtons()))

	g.perfCollector.StartPhase(telemetry.PhaseProgress)
	g.world.Progress(dt)

	g.perfCollector.EndFrame(dt)
	g.frame++
	g.flushPerf()
}
