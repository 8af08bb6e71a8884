package chart

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/anrid/proc-costs/pkg/stats"
)

// LineChart is a chart request: one line per distinct description, year on
// the x axis and the observation value on the y axis.
type LineChart struct {
	Title  string
	XLabel string
	YLabel string
	Points []stats.Observation
}

// Renderer writes line charts as PNG files into Dir.
type Renderer struct {
	Dir    string
	Width  vg.Length
	Height vg.Length
	// LegendWidth is the width of the panel right of the plot holding the
	// legend.
	LegendWidth vg.Length
	Logger      *slog.Logger
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{
		Dir:         dir,
		Width:       12 * vg.Inch,
		Height:      6 * vg.Inch,
		LegendWidth: 4 * vg.Inch,
	}
}

// Render draws ch into Dir/name.png and returns the file path. A chart
// without points is drawn with axes only.
func (r *Renderer) Render(name string, ch LineChart) (string, error) {
	p := plot.New()
	p.Title.Text = ch.Title
	p.X.Label.Text = ch.XLabel
	p.Y.Label.Text = ch.YLabel
	p.X.Tick.Marker = plot.TickerFunc(yearTicks)
	p.Add(plotter.NewGrid())

	// Entries go to a separate legend so it can be drawn outside the plot.
	legend := p.Legend
	legend.Top = true
	legend.Left = true

	lines := Lines(ch.Points)
	for i, line := range lines {
		xys := make(plotter.XYs, len(line.Points))
		for j, pt := range line.Points {
			xys[j].X = float64(pt.Year)
			xys[j].Y = pt.Value
		}

		l, s, err := plotter.NewLinePoints(xys)
		if err != nil {
			return "", fmt.Errorf("chart %q line %q: %w", ch.Title, line.Description, err)
		}
		l.Color = plotutil.Color(i)
		l.Dashes = plotutil.Dashes(i / len(plotutil.DefaultColors))
		s.Color = l.Color
		s.Shape = draw.CircleGlyph{}

		p.Add(l, s)
		legend.Add(line.Description, l, s)
	}

	img := vgimg.New(r.Width, r.Height)
	dc := draw.New(img)
	p.Draw(draw.Crop(dc, 0, -r.LegendWidth, 0, 0))
	legend.Draw(draw.Crop(dc, r.Width-r.LegendWidth, 0, 0, 0))

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create chart directory: %w", err)
	}
	path := filepath.Join(r.Dir, name+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write chart %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close chart %s: %w", path, err)
	}

	r.logger().Info("chart written",
		slog.String("path", path),
		slog.String("title", ch.Title),
		slog.Int("lines", len(lines)))
	return path, nil
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// yearTicks labels whole years, thinning the labels on long ranges.
func yearTicks(min, max float64) []plot.Tick {
	first, last := int(math.Ceil(min)), int(math.Floor(max))
	step := 1
	if last-first > 20 {
		step = 5
	}

	var ticks []plot.Tick
	for y := first; y <= last; y++ {
		t := plot.Tick{Value: float64(y)}
		if y%step == 0 {
			t.Label = strconv.Itoa(y)
		}
		ticks = append(ticks, t)
	}
	return ticks
}
