package visualize

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	cerrors "cloudeng.io/errors"
)

// DefaultCellSize is the edge length in pixels of one matrix cell in a PNG heatmap.
const DefaultCellSize = 12

// coolwarm anchors: low, mid, high.
var (
	coolLow  = color.RGBA{R: 59, G: 76, B: 192, A: 255}
	coolMid  = color.RGBA{R: 221, G: 221, B: 221, A: 255}
	coolHigh = color.RGBA{R: 180, G: 4, B: 38, A: 255}
)

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// scoreColor maps v within [lo, hi] onto the blue-white-red scale.
func scoreColor(v, lo, hi int) color.RGBA {
	if hi == lo {
		return coolMid
	}
	t := float64(v-lo) / float64(hi-lo)
	if t < 0.5 {
		return lerp(coolLow, coolMid, t*2)
	}
	return lerp(coolMid, coolHigh, (t-0.5)*2)
}

// HeatmapImage renders g with each cell as a cellSize square.
func HeatmapImage(g Grid, cellSize int) *image.RGBA {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	lo, hi := g.At(0, 0), g.At(0, 0)
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			lo = min(lo, g.At(i, j))
			hi = max(hi, g.At(i, j))
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Cols()*cellSize, g.Rows()*cellSize))
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			r := image.Rect(j*cellSize, i*cellSize, (j+1)*cellSize, (i+1)*cellSize)
			draw.Draw(img, r, image.NewUniform(scoreColor(g.At(i, j), lo, hi)), image.Point{}, draw.Src)
		}
	}
	return img
}

// WritePNGHeatmap encodes the heatmap of g as PNG to w.
func WritePNGHeatmap(w io.Writer, g Grid, cellSize int) error {
	return png.Encode(w, HeatmapImage(g, cellSize))
}

// SavePNGHeatmap writes the heatmap of g to filePath.
func SavePNGHeatmap(filePath string, g Grid, cellSize int) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	errs := &cerrors.M{}
	errs.Append(WritePNGHeatmap(f, g, cellSize))
	errs.Append(f.Close())
	return errs.Err()
}
