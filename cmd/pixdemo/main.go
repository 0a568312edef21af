// Command pixdemo renders a TOML scene file to PNG. Without -config it
// draws a built-in demo scene.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/pixcore"
	"github.com/gogpu/pixcore/blit"
	"github.com/gogpu/pixcore/color"
	"github.com/gogpu/pixcore/curve"
	"github.com/gogpu/pixcore/geom"
	"github.com/gogpu/pixcore/internal/scene"
)

func main() {
	var (
		config  = flag.String("config", "", "scene file (TOML)")
		output  = flag.String("output", "demo.png", "output file")
		width   = flag.Int("width", 400, "demo scene width")
		height  = flag.Int("height", 300, "demo scene height")
		dump    = flag.String("dump", "", "write the demo scene as TOML to this file and exit")
		verbose = flag.Bool("v", false, "log every shape")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixcore.SetLogger(log)

	if *dump != "" {
		if err := writeScene(*dump, demoScene(*width, *height)); err != nil {
			log.Error("failed to dump scene", "err", err)
			os.Exit(1)
		}
		return
	}

	sc := demoScene(*width, *height)
	if *config != "" {
		var err error
		if sc, err = scene.Load(*config); err != nil {
			log.Error("failed to load scene", "err", err)
			os.Exit(1)
		}
	}

	r := scene.NewRenderer(pixcore.Init())
	res, err := r.Render(sc)
	if err != nil {
		log.Error("failed to render", "err", err)
		os.Exit(1)
	}
	defer r.Release(res)

	if err := savePNG(*output, res.Image); err != nil {
		log.Error("failed to save", "err", err)
		os.Exit(1)
	}
	log.Info("demo saved", "path", *output, "size", res.Image.Size().String())
}

func savePNG(path string, img *blit.Buffer[color.Rgba]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, blit.ToImage(img)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func writeScene(path string, sc *scene.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sc.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func demoScene(w, h int) *scene.Scene {
	sc := &scene.Scene{Name: "demo", Width: w, Height: h, Background: "midnightblue", Track: true}
	sc.Shapes = append(sc.Shapes, shapesDemo()...)
	sc.Shapes = append(sc.Shapes, transformDemo()...)
	sc.Shapes = append(sc.Shapes, pathDemo()...)
	return sc
}

func shapesDemo() []scene.Shape {
	circle := func(id string, x, y float32, c string) scene.Shape {
		return scene.Shape{ID: id, Kind: scene.KindEllipse, Rect: [4]float32{x - 40, y - 40, 80, 80}, Color: c, Alpha: 200}
	}
	return []scene.Shape{
		circle("red", 75, 75, "#ff4d4d"),
		circle("green", 105, 75, "#4dff4d"),
		circle("blue", 90, 105, "#4d4dff"),
		{ID: "box", Kind: scene.KindRect, Rect: [4]float32{175, 50, 60, 40}, Color: "gold"},
		{ID: "frame", Kind: scene.KindRect, Rect: [4]float32{175, 50, 60, 40}, Width: 3, Mode: "outer", Color: "white"},
	}
}

func transformDemo() []scene.Shape {
	center := geom.PtF(320, 75)
	var out []scene.Shape
	for i := range 8 {
		deg := float32(i) * 45
		r := curve.Rotation{Angle: deg, Center: center}
		sq := r.ApplyAll([]geom.PointF{
			geom.PtF(center.X+20, center.Y-15),
			geom.PtF(center.X+50, center.Y-15),
			geom.PtF(center.X+50, center.Y+15),
			geom.PtF(center.X+20, center.Y+15),
		})
		out = append(out, scene.Shape{
			ID:     fmt.Sprintf("square%d", i),
			Kind:   scene.KindPolygon,
			Points: pairs(sq),
			Color:  hue(deg),
		})
	}
	return out
}

func pathDemo() []scene.Shape {
	star := make([]geom.PointF, 0, 10)
	for i := range 10 {
		radius := float32(40)
		if i%2 == 1 {
			radius = 18
		}
		p := curve.Rotate(geom.PtF(300, 220-radius), geom.PtF(300, 220), float32(i)*36)
		star = append(star, p)
	}
	wave := []geom.PointF{
		geom.PtF(30, 230), geom.PtF(70, 200), geom.PtF(110, 250),
		geom.PtF(150, 210), geom.PtF(190, 240),
	}
	return []scene.Shape{
		{ID: "star", Kind: scene.KindPolygon, Points: pairs(star), Color: "yellow"},
		{ID: "wave", Kind: scene.KindStroke, Points: pairs(wave), Width: 6, Color: "orange"},
		{ID: "guide", Kind: scene.KindHairline, Points: pairs(wave), Color: "white", Alpha: 128},
		{ID: "arc", Kind: scene.KindArc, Rect: [4]float32{200, 180, 60, 60}, Start: 200, End: 340, Width: 4, Color: "lightgreen"},
		{ID: "pie", Kind: scene.KindPie, Rect: [4]float32{340, 180, 50, 50}, Start: 30, End: 300, Color: "tomato", Command: []string{"backdrop"}},
	}
}

func pairs(pts []geom.PointF) [][2]float32 {
	out := make([][2]float32, len(pts))
	for i, p := range pts {
		out[i] = [2]float32{p.X, p.Y}
	}
	return out
}

// hue returns a saturated colour around the wheel at deg.
func hue(deg float32) string {
	sector := int(deg/60) % 6
	f := uint8((deg - float32(sector)*60) / 60 * 255)
	var c color.Rgba
	switch sector {
	case 0:
		c = color.RGB(255, f, 0)
	case 1:
		c = color.RGB(255-f, 255, 0)
	case 2:
		c = color.RGB(0, 255, f)
	case 3:
		c = color.RGB(0, 255-f, 255)
	case 4:
		c = color.RGB(f, 0, 255)
	default:
		c = color.RGB(255, 0, 255-f)
	}
	return c.String()
}
