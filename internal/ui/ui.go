package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kolibri8/nescore/internal/nes"
)

// TODO: replace hardcode values with constants

// C - cycle the pattern-table palette
// P - pause
// R - one step and stop

type UI struct {
	console *nes.Console
	disasm  map[uint16]string

	palette uint8
}

func New(console *nes.Console) *UI {
	return &UI{
		console: console,
		disasm:  console.Disassemble(),
	}
}

func (ui *UI) Update() error {
	// if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
	// 	ui.showDebugInfo = !ui.showDebugInfo
	// }

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		ui.palette++
		if ui.palette > 7 {
			ui.palette = 0
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.console.TooglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.console.OneStepAndStop()
	}

	ui.console.Pad1().SetButtons(readPad1Buttons())

	ui.console.Tic()
	return nil
}

// readPad1Buttons maps the arrow keys, Enter/Shift and Z/X onto the
// NES pad-1 button bitmask every Update tick.
func readPad1Buttons() uint8 {
	var mask uint8
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		mask |= nes.ButtonRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		mask |= nes.ButtonLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		mask |= nes.ButtonDown
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		mask |= nes.ButtonUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyEnter) {
		mask |= nes.ButtonStart
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		mask |= nes.ButtonSelect
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		mask |= nes.ButtonB
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		mask |= nes.ButtonA
	}
	return mask
}

func (ui *UI) Draw(screen *ebiten.Image) {

	info := ui.console.DebugInfo()
	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " PALETTE: %d\n", ui.palette)
	fmt.Fprintf(&infoStr, " STATUS: %s\n", info.StatusString())
	fmt.Fprintf(&infoStr, " PC: %04X\n", info.PC)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", info.A, info.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", info.X, info.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", info.Y, info.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", info.SP)

	for i := max(0, info.PC-7); i < info.PC; i++ {
		infoStr.WriteString(" " + ui.disasm[i] + "\n")
	}
	infoStr.WriteString("*" + ui.disasm[info.PC] + "\n")
	for i := info.PC + 1; i < min(0xFFFF, info.PC+7); i++ {
		infoStr.WriteString(" " + ui.disasm[i] + "\n")
	}

	debugScreenOffsetX := float32(gameScreenWidth * gameScreenScale)
	vector.DrawFilledRect(screen, debugScreenOffsetX, 0, debugScreenWidth, debugScreenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), int(debugScreenOffsetX), 0)

	for i := 0; i < 8; i++ {
		paletteImg := ebiten.NewImage(4, 1)
		paletteImg.Set(0, 0, ui.console.GetColorFromPalette(uint8(i), 0))
		paletteImg.Set(1, 0, ui.console.GetColorFromPalette(uint8(i), 1))
		paletteImg.Set(2, 0, ui.console.GetColorFromPalette(uint8(i), 2))
		paletteImg.Set(3, 0, ui.console.GetColorFromPalette(uint8(i), 3))

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(4, 4)
		op.GeoM.Translate(float64(debugScreenOffsetX)+10+float64(i*35), debugScreenHeight-128-20)
		screen.DrawImage(paletteImg, op)

	}

	for i := 0; i < 2; i++ {
		tilesImg := ebiten.NewImageFromImage(ui.console.GetPatternTable(ui.palette, i))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(debugScreenOffsetX)+10+(float64(i)*(128+5)), debugScreenHeight-128-10)
		screen.DrawImage(tilesImg, op)
	}

	img := ebiten.NewImageFromImage(ui.console.Screen())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(gameScreenScale, gameScreenScale)
	screen.DrawImage(img, op)
}

const (
	gameScreenScale  = 2
	gameScreenWidth  = 256
	gameScreenHeight = 240

	debugScreenWidth  = 286
	debugScreenHeight = gameScreenHeight * gameScreenScale
)

func (ui *UI) Layout(_, _ int) (int, int) {
	return gameScreenWidth*gameScreenScale + debugScreenWidth, gameScreenHeight * gameScreenScale
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	screenSizeX, screenSizeY := gameScreenWidth*gameScreenScale+debugScreenWidth, gameScreenHeight*gameScreenScale
	screenSizeX *= 2
	screenSizeY *= 2
	ebiten.SetWindowSize(screenSizeX, screenSizeY)
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
