package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"golang.org/x/image/font/basicfont"

	"github.com/knowak/pirx/pkg/physics"
	"github.com/knowak/pirx/pkg/simulation"
)

const (
	screenWidth  = 800
	screenHeight = 600

	panSpeed   = 6.0
	zoomStep   = 1.1
	minZoom    = 0.1
	maxZoom    = 10.0
	statsEvery = 60 // co ile klatek logować statystyki

	statsWindow = 100
)

// Game ---
type Game struct {
	envPath  string
	env      *simulation.Environment
	timeline *simulation.Timeline

	current     *simulation.World
	predictions []*simulation.World
	tick        int

	paused   bool
	showCone bool
	showHelp bool

	// kamera: czysta transformacja widoku, nigdy nie mutuje ciał
	camX, camY float64
	zoom       float64

	dragging           bool
	dragX, dragY       int
	dragCamX, dragCamY float64

	stats      *Statistics
	frameCount int

	// błąd fizyki zatrzymuje symulację na stałe (do resetu)
	stepErr error
}

// Update ---
func (g *Game) Update() error {
	// klawisze
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.showCone = !g.showCone
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			log.Printf("Reset nieudany: %v", err)
		}
		return nil
	}

	// kamera: strzałki, przeciąganie myszą, kółko
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camX -= panSpeed / g.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camX += panSpeed / g.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camY -= panSpeed / g.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camY += panSpeed / g.zoom
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.dragX, g.dragY = ebiten.CursorPosition()
		g.dragCamX, g.dragCamY = g.camX, g.camY
	}
	if g.dragging {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			mx, my := ebiten.CursorPosition()
			g.camX = g.dragCamX - float64(mx-g.dragX)/g.zoom
			g.camY = g.dragCamY - float64(my-g.dragY)/g.zoom
		} else {
			g.dragging = false
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			g.zoom *= zoomStep
		} else {
			g.zoom /= zoomStep
		}
		g.zoom = math.Min(maxZoom, math.Max(minZoom, g.zoom))
	}

	if g.stepErr != nil {
		return nil
	}

	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.advanceFrame()
		}
		return nil
	}

	g.advanceFrame()
	return nil
}

// advanceFrame wykonuje dokładnie jedno Advance osi czasu na klatkę.
func (g *Game) advanceFrame() {
	start := time.Now()
	current, predictions, err := g.timeline.Advance()
	if err != nil {
		// deterministyczny błąd numeryczny - ponawianie nie ma sensu
		g.stepErr = err
		g.paused = true
		log.Printf("Symulacja zatrzymana: %v", err)
		return
	}
	g.current = current
	g.predictions = predictions
	g.tick++

	g.stats.Push(float64(time.Since(start).Microseconds()) / 1000.0)
	g.frameCount++
	if g.frameCount%statsEvery == 0 {
		log.Printf("Czas kroku avg=%.3fms min=%.3fms max=%.3fms statki=%d",
			g.stats.MovingAvg(), g.stats.Min(), g.stats.Max(), len(g.current.Ships))
		g.stats.ResetExtremes()
	}
}

// reset przeładowuje scenariusz z pliku i buduje oś czasu od nowa.
func (g *Game) reset() error {
	env, err := simulation.LoadConfig(g.envPath)
	if err != nil {
		return err
	}
	tl, err := simulation.NewTimeline(env.World, env.Horizon)
	if err != nil {
		return err
	}
	g.env = env
	g.timeline = tl
	g.current = nil
	g.predictions = nil
	g.tick = 0
	g.stepErr = nil
	g.paused = false
	g.frameCount = 0
	g.stats = NewStatistics(statsWindow)
	return nil
}

func (g *Game) worldToScreen(p physics.Vec2) (float64, float64) {
	return (p.X-g.camX)*g.zoom + screenWidth/2, (p.Y-g.camY)*g.zoom + screenHeight/2
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	if g.current == nil {
		return
	}

	// stożek prognozy: statki z przyszłych snapshotów, przygaszane
	// proporcjonalnie do indeksu prognozy
	if g.showCone {
		horizon := g.timeline.Horizon()
		for i, w := range g.predictions {
			fade := 1.0 - float64(i)/float64(horizon)
			for s := range w.Ships {
				ship := &w.Ships[s]
				sx, sy := g.worldToScreen(ship.Pos)
				px, py := int(sx), int(sy)
				if px < 0 || py < 0 || px >= screenWidth || py >= screenHeight {
					continue
				}
				screen.Set(px, py, fadeColor(ship.ColorC, fade))
			}
		}
	}

	for i := range g.current.Planets {
		p := &g.current.Planets[i]
		sx, sy := g.worldToScreen(p.Pos)
		drawCircle(screen, sx, sy, p.Radius*g.zoom, p.ColorC)
	}
	for i := range g.current.Ships {
		s := &g.current.Ships[i]
		sx, sy := g.worldToScreen(s.Pos)
		drawCircle(screen, sx, sy, s.Radius*g.zoom, s.ColorC)
	}

	// HUD
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("%s  tick %d", g.env.Name, g.tick), face, 10, 20, color.RGBA{220, 220, 220, 255})
	text.Draw(screen, fmt.Sprintf("statki: %d  horyzont: %d  zoom: %.2f", len(g.current.Ships), g.timeline.Horizon(), g.zoom), face, 10, 36, color.RGBA{190, 190, 190, 255})
	text.Draw(screen, fmt.Sprintf("krok avg %.3fms", g.stats.MovingAvg()), face, 10, 52, color.RGBA{160, 160, 160, 255})
	if g.paused && g.stepErr == nil {
		text.Draw(screen, "PAUZA (N = jeden krok)", face, 10, 72, color.RGBA{230, 230, 120, 255})
	}
	if g.stepErr != nil {
		text.Draw(screen, "BŁĄD: "+g.stepErr.Error(), face, 10, 72, color.RGBA{255, 90, 90, 255})
		text.Draw(screen, "R = reset scenariusza", face, 10, 88, color.RGBA{255, 90, 90, 255})
	}
	if g.showHelp {
		lines := []string{
			"P pauza  N krok  C stożek prognozy",
			"strzałki/mysz pan  kółko zoom",
			"R reset  H pomoc  Q wyjście",
		}
		for i, l := range lines {
			text.Draw(screen, l, face, 10, screenHeight-56+i*16, color.RGBA{140, 140, 160, 255})
		}
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), screenWidth-80, screenHeight-18)
}

// Layout ---
func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// fadeColor przygasza kolor w stronę tła (alfa bez blendowania,
// wystarczające dla pojedynczych pikseli stożka).
func fadeColor(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: 255,
	}
}

// drawCircle - wypełnione koło (prostą metodą) - wystarczające dla małych promieni
func drawCircle(screen *ebiten.Image, cx, cy, r float64, clr color.RGBA) {
	ir := int(math.Ceil(r))
	rr := r * r
	for dy := -ir; dy <= ir; dy++ {
		y := int(math.Round(cy)) + dy
		if y < 0 || y >= screenHeight {
			continue
		}
		xspan := math.Sqrt(math.Max(0, rr-float64(dy*dy)))
		xmin := int(math.Round(cx - xspan))
		xmax := int(math.Round(cx + xspan))
		if xmin < 0 {
			xmin = 0
		}
		if xmax >= screenWidth {
			xmax = screenWidth - 1
		}
		for x := xmin; x <= xmax; x++ {
			screen.Set(x, y, clr)
		}
	}
}

func main() {
	envName := flag.String("env", "pirx", "Wybór środowiska (np. pirx, binary)")
	flag.Parse()
	configPath := filepath.Join("pkg/assets", fmt.Sprintf("%s.json", *envName))

	env, err := simulation.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Błąd wczytywania środowiska: %v", err)
	}
	timeline, err := simulation.NewTimeline(env.World, env.Horizon)
	if err != nil {
		log.Fatalf("Błąd budowy osi czasu: %v", err)
	}

	game := &Game{
		envPath:  configPath,
		env:      env,
		timeline: timeline,
		showCone: true,
		showHelp: true,
		camX:     env.Bounds[0] / 2,
		camY:     env.Bounds[1] / 2,
		zoom:     1.0,
		stats:    NewStatistics(statsWindow),
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Pirx - " + env.Name)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
