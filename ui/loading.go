package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadingScreen shows asset loading progress before the game starts.
type LoadingScreen struct {
	renderer *Renderer
	title    string
}

// NewLoadingScreen creates a loading screen headed by title.
func NewLoadingScreen(title string) *LoadingScreen {
	return &LoadingScreen{renderer: NewRenderer(), title: title}
}

// Draw renders the progress of loaded out of total assets. A non-empty
// failure replaces the bar with the error text.
func (l *LoadingScreen) Draw(screenWidth, screenHeight int32, loaded, total int, failure string) {
	theme := l.renderer.Theme
	rl.ClearBackground(theme.Backdrop)

	barW := float32(screenWidth) * 0.7
	barH := float32(18)
	bounds := rl.Rectangle{
		X:      (float32(screenWidth) - barW) / 2,
		Y:      float32(screenHeight)/2 - barH/2,
		Width:  barW,
		Height: barH,
	}

	titleW := rl.MeasureText(l.title, 20)
	rl.DrawText(l.title, (screenWidth-titleW)/2, int32(bounds.Y)-40, 20, theme.ValueColor)

	if failure != "" {
		rl.DrawText("Loading failed", int32(bounds.X), int32(bounds.Y), theme.HeaderFontSize, rl.Red)
		rl.DrawText(failure, int32(bounds.X), int32(bounds.Y)+theme.LineHeight+4, theme.FontSize, theme.LabelColor)
		return
	}

	var value float32
	if total > 0 {
		value = float32(loaded) / float32(total)
	}
	gui.ProgressBar(bounds, "", fmt.Sprintf("%d/%d", loaded, total), value, 0, 1)
}
