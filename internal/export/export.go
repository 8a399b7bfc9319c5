// Package export writes generator output to PNG, animated GIF and CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"
	"strconv"

	"golang.org/x/image/draw"

	"github.com/san-kum/procvis/internal/logging"
	"github.com/san-kum/procvis/internal/pixel"
)

// Scale upsamples a frame by an integer factor with nearest-neighbour
// sampling so cells and pixels stay crisp. factor <= 1 returns the frame's
// own image.
func Scale(f *pixel.Frame, factor int) *image.RGBA {
	src := f.Image()
	if factor <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, f.Width*factor, f.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func EncodePNG(w io.Writer, f *pixel.Frame, factor int) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, Scale(f, factor))
}

func WritePNG(path string, f *pixel.Frame, factor int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(out, f, factor); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	logging.Logger().Info("png written", "path", path, "width", f.Width*max(factor, 1), "height", f.Height*max(factor, 1))
	return out.Close()
}

// EncodeGIF quantizes frames into the Plan9 palette with Floyd-Steinberg
// dithering. delay is in hundredths of a second.
func EncodeGIF(w io.Writer, frames []*pixel.Frame, delay, factor int) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: no frames to encode")
	}
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, f := range frames {
		rgba := Scale(f, factor)
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})
		anim.Image = append(anim.Image, pimg)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

func WriteGIF(path string, frames []*pixel.Frame, delay, factor int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeGIF(out, frames, delay, factor); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	logging.Logger().Info("gif written", "path", path, "frames", len(frames))
	return out.Close()
}

// WriteSeries writes a two-column CSV of frame index and value.
func WriteSeries(w io.Writer, name string, values []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", name}); err != nil {
		return err
	}
	for i, v := range values {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 6, 64)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteSeriesFile(path, name string, values []float64) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSeries(out, name, values); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ReadSeries parses a CSV written by WriteSeries.
func ReadSeries(r io.Reader) (string, []float64, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return "", nil, err
	}
	if len(records) == 0 || len(records[0]) < 2 {
		return "", nil, fmt.Errorf("export: missing series header")
	}

	values := make([]float64, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < 2 {
			return "", nil, fmt.Errorf("export: row %d has %d columns", i+1, len(rec))
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return "", nil, fmt.Errorf("export: row %d: %w", i+1, err)
		}
		values = append(values, v)
	}
	return records[0][1], values, nil
}
