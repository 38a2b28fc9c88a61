package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/fonts"
	"github.com/automoto/pixelfall/scenes"
	"github.com/automoto/pixelfall/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.IntVar(&config.Debug.StartScreen, "screen", config.Debug.StartScreen, "screen id to start on")
	flag.BoolVar(&config.Debug.NoSave, "nosave", config.Debug.NoSave, "disable progress persistence")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Pixelfall")
	ebiten.SetTPS(config.C.TPS)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal(err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
