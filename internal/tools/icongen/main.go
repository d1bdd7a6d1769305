// Command icongen renders the NYX OS app and tray icons into build/.
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

func main() {
	var (
		repoDir = flag.String("repo", ".", "path to repo root (contains build/)")
	)
	flag.Parse()

	buildDir := filepath.Join(*repoDir, "build")
	winDir := filepath.Join(buildDir, "windows")

	if err := os.MkdirAll(winDir, 0o755); err != nil {
		fatal(err)
	}

	app := renderAppIcon(1024)
	if err := writePNG(filepath.Join(buildDir, "appicon.png"), app); err != nil {
		fatal(err)
	}

	tray := renderTrayIcon(512)

	if err := writeICO(filepath.Join(winDir, "icon.ico"), app, []int{256, 128, 64, 48, 32, 16}); err != nil {
		fatal(err)
	}
	if err := writeICO(filepath.Join(winDir, "tray.ico"), tray, []int{64, 32, 24, 16}); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, "icongen:", err)
	os.Exit(2)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func writeICO(path string, src image.Image, sizes []int) error {
	type entry struct {
		size int
		png  []byte
	}
	entries := make([]entry, 0, len(sizes))
	for _, size := range sizes {
		img := scaleDown(src, size, size)
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return err
		}
		entries = append(entries, entry{size: size, png: buf.Bytes()})
	}

	// ICONDIR + ICONDIRENTRY[] + image data blobs
	var out bytes.Buffer
	// ICONDIR
	if err := binary.Write(&out, binary.LittleEndian, uint16(0)); err != nil { // reserved
		return err
	}
	if err := binary.Write(&out, binary.LittleEndian, uint16(1)); err != nil { // type (1=icon)
		return err
	}
	if err := binary.Write(&out, binary.LittleEndian, uint16(len(entries))); err != nil {
		return err
	}

	type dirEntry struct {
		width      uint8
		height     uint8
		colorCount uint8
		reserved   uint8
		planes     uint16
		bitCount   uint16
		bytesInRes uint32
		offset     uint32
	}

	dir := make([]dirEntry, 0, len(entries))
	offset := uint32(6 + 16*len(entries))
	for _, e := range entries {
		w := uint8(e.size)
		h := uint8(e.size)
		if e.size >= 256 {
			w, h = 0, 0 // 0 means 256 in ICO
		}
		dir = append(dir, dirEntry{
			width:      w,
			height:     h,
			colorCount: 0,
			reserved:   0,
			planes:     1,
			bitCount:   32,
			bytesInRes: uint32(len(e.png)),
			offset:     offset,
		})
		offset += uint32(len(e.png))
	}

	for _, d := range dir {
		if err := binary.Write(&out, binary.LittleEndian, d); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if _, err := out.Write(e.png); err != nil {
			return err
		}
	}

	return os.WriteFile(path, out.Bytes(), 0o644)
}

func renderAppIcon(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	radius := float64(size) * 0.18
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := roundedRectAlpha(float64(x)+0.5, float64(y)+0.5, float64(size), float64(size), radius)
			if a <= 0 {
				continue
			}

			// Night-sky gradient, deep indigo into near-black.
			t := float64(y) / float64(size-1)
			bg := lerpRGBA(
				color.RGBA{R: 0x2b, G: 0x2d, B: 0x55, A: 0xff},
				color.RGBA{R: 0x07, G: 0x08, B: 0x14, A: 0xff},
				t,
			)

			set(img, x, y, withAlpha(bg, uint8(float64(bg.A)*a)))
		}
	}

	drawCrescent(img, float64(size)*0.52, float64(size)*0.48, float64(size)*0.30,
		color.RGBA{R: 0xe9, G: 0xec, B: 0xff, A: 0xff},
		color.RGBA{R: 0x10, G: 0x12, B: 0x2a, A: 0xff})

	// Scattered stars around the crescent.
	stars := []struct{ x, y, r float64 }{
		{0.22, 0.24, 0.020},
		{0.76, 0.20, 0.014},
		{0.30, 0.72, 0.012},
		{0.80, 0.66, 0.018},
		{0.18, 0.50, 0.010},
	}
	for _, s := range stars {
		fillCircleAA(img, float64(size)*s.x, float64(size)*s.y, float64(size)*s.r,
			color.RGBA{R: 0xf2, G: 0xf4, B: 0xff, A: 0xe0})
	}

	return img
}

func renderTrayIcon(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Transparent background; the crescent alone reads well in a tray.
	drawCrescent(img, float64(size)*0.50, float64(size)*0.50, float64(size)*0.42,
		color.RGBA{R: 0xe9, G: 0xec, B: 0xff, A: 0xff},
		color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x00})

	fillCircleAA(img, float64(size)*0.78, float64(size)*0.24, float64(size)*0.05,
		color.RGBA{R: 0xe9, G: 0xec, B: 0xff, A: 0xff})

	return img
}

// drawCrescent fills a disc and carves the bite out of it with a second,
// offset disc in the carve color (transparent carve only works on an
// empty background).
func drawCrescent(img *image.RGBA, cx, cy, r float64, body, carve color.RGBA) {
	fillCircleAA(img, cx, cy, r, body)
	if carve.A == 0 {
		eraseCircle(img, cx+r*0.42, cy-r*0.28, r*0.86)
		return
	}
	fillCircleAA(img, cx+r*0.42, cy-r*0.28, r*0.86, carve)
}

func eraseCircle(dst *image.RGBA, cx, cy, r float64) {
	minX := int(math.Floor(cx - r - 2))
	maxX := int(math.Ceil(cx + r + 2))
	minY := int(math.Floor(cy - r - 2))
	maxY := int(math.Ceil(cy + r + 2))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5
			if math.Hypot(fx-cx, fy-cy) <= r {
				set(dst, x, y, color.RGBA{})
			}
		}
	}
}

func fillCircleAA(dst *image.RGBA, cx, cy, r float64, c color.RGBA) {
	minX := int(math.Floor(cx - r - 2))
	maxX := int(math.Ceil(cx + r + 2))
	minY := int(math.Floor(cy - r - 2))
	maxY := int(math.Ceil(cy + r + 2))

	r1 := r - 1.0
	r2 := r + 1.0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5
			d := math.Hypot(fx-cx, fy-cy)
			if d <= r1 {
				blend(dst, x, y, c)
				continue
			}
			if d >= r2 {
				continue
			}
			a := clamp01((r2 - d) / (r2 - r1))
			cc := c
			cc.A = uint8(float64(cc.A) * a)
			blend(dst, x, y, cc)
		}
	}
}

func roundedRectAlpha(x, y, w, h, r float64) float64 {
	// Distance-based antialiased coverage for a rounded rect at [0..w]x[0..h].
	//
	// Return 0..1 alpha.
	if x < 0 || y < 0 || x > w || y > h {
		return 0
	}
	r = math.Max(0, r)
	r = math.Min(r, math.Min(w, h)/2)

	// Fast inside check for center box.
	if x >= r && x <= w-r && y >= r && y <= h-r {
		return 1
	}

	// Corner distance.
	cx := clamp(x, r, w-r)
	cy := clamp(y, r, h-r)
	d := math.Hypot(x-cx, y-cy)
	if d <= r-1 {
		return 1
	}
	if d >= r+1 {
		return 0
	}
	return clamp01((r + 1 - d) / 2)
}

func scaleDown(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	sw := sb.Dx()
	sh := sb.Dy()
	if sw == w && sh == h {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(x, y, src.At(sb.Min.X+x, sb.Min.Y+y))
			}
		}
		return dst
	}

	// Simple area sampling (box filter).
	xScale := float64(sw) / float64(w)
	yScale := float64(sh) / float64(h)
	for y := 0; y < h; y++ {
		y0 := float64(y) * yScale
		y1 := float64(y+1) * yScale
		iy0 := int(math.Floor(y0))
		iy1 := int(math.Ceil(y1))
		for x := 0; x < w; x++ {
			x0 := float64(x) * xScale
			x1 := float64(x+1) * xScale
			ix0 := int(math.Floor(x0))
			ix1 := int(math.Ceil(x1))

			var r, g, b, a float64
			var n float64
			for sy := iy0; sy < iy1; sy++ {
				if sy < 0 || sy >= sh {
					continue
				}
				for sx := ix0; sx < ix1; sx++ {
					if sx < 0 || sx >= sw {
						continue
					}
					cr, cg, cb, ca := src.At(sb.Min.X+sx, sb.Min.Y+sy).RGBA()
					r += float64(cr)
					g += float64(cg)
					b += float64(cb)
					a += float64(ca)
					n++
				}
			}
			if n == 0 {
				continue
			}
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8((r / n) / 257.0),
				G: uint8((g / n) / 257.0),
				B: uint8((b / n) / 257.0),
				A: uint8((a / n) / 257.0),
			})
		}
	}

	return dst
}

func blend(dst *image.RGBA, x, y int, src color.RGBA) {
	if x < 0 || y < 0 || x >= dst.Bounds().Dx() || y >= dst.Bounds().Dy() {
		return
	}
	i := dst.PixOffset(x, y)
	dr := float64(dst.Pix[i+0])
	dg := float64(dst.Pix[i+1])
	db := float64(dst.Pix[i+2])
	da := float64(dst.Pix[i+3]) / 255.0

	sa := float64(src.A) / 255.0
	if sa <= 0 {
		return
	}

	outA := sa + da*(1-sa)
	if outA <= 0 {
		dst.Pix[i+0] = 0
		dst.Pix[i+1] = 0
		dst.Pix[i+2] = 0
		dst.Pix[i+3] = 0
		return
	}
	outR := (float64(src.R)*sa + dr*da*(1-sa)) / outA
	outG := (float64(src.G)*sa + dg*da*(1-sa)) / outA
	outB := (float64(src.B)*sa + db*da*(1-sa)) / outA

	dst.Pix[i+0] = uint8(clamp(outR, 0, 255))
	dst.Pix[i+1] = uint8(clamp(outG, 0, 255))
	dst.Pix[i+2] = uint8(clamp(outB, 0, 255))
	dst.Pix[i+3] = uint8(clamp(outA*255.0, 0, 255))
}

func set(dst *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= dst.Bounds().Dx() || y >= dst.Bounds().Dy() {
		return
	}
	i := dst.PixOffset(x, y)
	dst.Pix[i+0] = c.R
	dst.Pix[i+1] = c.G
	dst.Pix[i+2] = c.B
	dst.Pix[i+3] = c.A
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
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

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
