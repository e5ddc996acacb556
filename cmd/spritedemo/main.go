// Command spritedemo composites a small sprite scene and saves it as PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/atlas"
	"github.com/gogpu/sprite/render"
	"github.com/gogpu/sprite/texture"
)

func main() {
	var (
		width  = flag.Int("width", 512, "image width")
		height = flag.Int("height", 384, "image height")
		output = flag.String("output", "sprites.png", "output file")
		curve  = flag.Bool("curve", false, "enable the perceptual color curve")
	)
	flag.Parse()

	sheet, err := buildAtlas()
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}

	renderer := render.NewSoftwareRenderer(&render.RendererConfig{
		Stage: &sprite.StageConfig{ColorCurve: *curve},
	})
	defer renderer.Close()

	target := render.NewPixmapTarget(*width, *height)

	draws, err := buildScene(sheet, *width, *height)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	if err := renderer.DrawAll(target, draws); err != nil {
		log.Fatalf("Failed to composite: %v", err)
	}

	if err := savePNG(target, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %d sprites)\n", *output, *width, *height, len(draws))
}

// buildAtlas packs a few procedural sprites into one sheet.
func buildAtlas() (*atlas.Atlas, error) {
	sheet, err := atlas.New(256, 256)
	if err != nil {
		return nil, err
	}

	sprites := map[string]*texture.Buffer{
		"disc":    makeDisc(64),
		"ring":    makeRing(64),
		"checker": makeChecker(64, 8),
	}
	for name, img := range sprites {
		if _, err := sheet.Add(name, img); err != nil {
			return nil, fmt.Errorf("add %q: %w", name, err)
		}
	}
	return sheet, nil
}

// buildScene places tinted copies of the atlas sprites.
func buildScene(sheet *atlas.Atlas, width, height int) ([]render.SpriteDraw, error) {
	tex := sheet.Texture()

	type placement struct {
		name string
		x, y float32
		size float32
		tint sprite.RGB
	}
	placements := []placement{
		{"checker", 16, 16, 96, sprite.White},
		{"checker", 128, 16, 96, sprite.RGB{R: 1, G: 0.6, B: 0.2}},
		{"disc", 48, 140, 128, sprite.RGB{R: 0.9, G: 0.2, B: 0.2}},
		{"disc", 140, 140, 128, sprite.RGB{R: 0.2, G: 0.8, B: 0.3}},
		{"disc", 232, 140, 128, sprite.RGB{R: 0.3, G: 0.4, B: 1}},
		{"ring", 340, 40, 150, sprite.RGB{R: 1, G: 0.9, B: 0.3}},
		// Over-unity tint: brightens without clamping until PNG output.
		{"ring", 340, 200, 150, sprite.RGB{R: 1.8, G: 1.8, B: 1.8}},
	}

	draws := make([]render.SpriteDraw, 0, len(placements))
	for _, p := range placements {
		params, err := sheet.PushConstants(p.name,
			sprite.Vec2{X: p.x, Y: p.y},
			sprite.Vec2{X: p.size, Y: p.size},
			p.tint)
		if err != nil {
			return nil, err
		}
		draws = append(draws, render.SpriteDraw{
			Params:  params,
			Texture: tex,
			Filter:  texture.FilterBilinear,
		})
	}
	return draws, nil
}

func makeDisc(size int) *texture.Buffer {
	buf, _ := texture.New(size, size, texture.FormatRGBA8)
	c := float64(size-1) / 2
	r := c - 1
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c)
			if d <= r {
				// Soft edge over the last texel.
				a := uint8(255 * clamp01(r-d))
				if r-d >= 1 {
					a = 255
				}
				_ = buf.SetRGBA(x, y, 255, 255, 255, a)
			}
		}
	}
	return buf
}

func makeRing(size int) *texture.Buffer {
	buf, _ := texture.New(size, size, texture.FormatRGBA8)
	c := float64(size-1) / 2
	outer := c - 1
	inner := outer * 0.6
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c)
			if d <= outer && d >= inner {
				_ = buf.SetRGBA(x, y, 255, 255, 255, 255)
			}
		}
	}
	return buf
}

func makeChecker(size, cell int) *texture.Buffer {
	buf, _ := texture.New(size, size, texture.FormatRGBA8)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				_ = buf.SetRGBA(x, y, 230, 230, 230, 255)
			} else {
				_ = buf.SetRGBA(x, y, 60, 60, 60, 255)
			}
		}
	}
	return buf
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func savePNG(target *render.PixmapTarget, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, target.Image())
}
