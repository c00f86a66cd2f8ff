package render

import (
	"fmt"
	"image/color"
	"io"

	"semiplot/types"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Size 画布尺寸
type Size struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// 默认画布
var (
	FrameSize = Size{Width: 15 * vg.Inch, Height: 10 * vg.Inch, DPI: 100} // 2x2 动画帧
	ChartSize = Size{Width: 10 * vg.Inch, Height: 6 * vg.Inch, DPI: 100}  // 单图
)

// 饱和点标记颜色
var markerColor = color.NRGBA{R: 255, A: 255}

// 虚线样式
var dashes = []vg.Length{vg.Points(5), vg.Points(4)}

// NewCanvas 创建光栅画布
func NewCanvas(s Size) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(s.Width, s.Height), vgimg.UseDPI(s.DPI))
}

// NewPlot 把子图数据转换为 gonum 图表
func NewPlot(panel types.Panel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = panel.YLabel
	p.Legend.Top = true

	if panel.Grid {
		g := plotter.NewGrid()
		if panel.DashedGrid {
			g.Vertical.Dashes = dashes
			g.Horizontal.Dashes = dashes
		}
		p.Add(g)
	}
	for i, c := range panel.Curves {
		l, err := plotter.NewLine(toXYs(c.Points))
		if err != nil {
			return nil, fmt.Errorf("曲线 %q: %w", c.Label, err)
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = curveColor(c.Color, i)
		if c.Dashed {
			l.LineStyle.Dashes = dashes
		}
		p.Add(l)
		if c.Label != "" {
			p.Legend.Add(c.Label, l)
		}
	}
	if len(panel.Markers) > 0 {
		s, err := plotter.NewScatter(toXYs(panel.Markers))
		if err != nil {
			return nil, fmt.Errorf("饱和点: %w", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Color = markerColor
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
	}
	if len(panel.Annotations) > 0 {
		xyl := plotter.XYLabels{
			XYs:    make(plotter.XYs, len(panel.Annotations)),
			Labels: make([]string, len(panel.Annotations)),
		}
		for i, a := range panel.Annotations {
			xyl.XYs[i] = plotter.XY{X: a.X, Y: a.Y}
			xyl.Labels[i] = a.Text
		}
		labels, err := plotter.NewLabels(xyl)
		if err != nil {
			return nil, fmt.Errorf("标注: %w", err)
		}
		for i, a := range panel.Annotations {
			if a.Color.A != 0 {
				labels.TextStyle[i].Color = a.Color
			}
		}
		p.Add(labels)
	}

	// 固定坐标范围，需在添加数据之后设置
	p.X.Min, p.X.Max = panel.XMin, panel.XMax
	p.Y.Min, p.Y.Max = panel.YMin, panel.YMax
	return p, nil
}

// DrawPanels 按两列平铺绘制多个子图
func DrawPanels(panels []types.Panel, dc draw.Canvas) error {
	switch len(panels) {
	case 0:
		return fmt.Errorf("没有可绘制的子图")
	case 1:
		p, err := NewPlot(panels[0])
		if err != nil {
			return err
		}
		p.Draw(dc)
		return nil
	}
	if len(panels)%2 != 0 {
		return fmt.Errorf("子图数量必须为偶数: %d", len(panels))
	}
	rows := len(panels) / 2
	plots := make([][]*plot.Plot, rows)
	for i, panel := range panels {
		p, err := NewPlot(panel)
		if err != nil {
			return fmt.Errorf("子图 %q: %w", panel.Title, err)
		}
		plots[i/2] = append(plots[i/2], p)
	}
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      2,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 3,
		PadBottom: vg.Millimeter * 3,
		PadLeft:   vg.Millimeter * 3,
		PadRight:  vg.Millimeter * 3,
	}
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}
	return nil
}

// Image 光栅化多个子图
func Image(panels []types.Panel, s Size) (*vgimg.Canvas, error) {
	c := NewCanvas(s)
	if err := DrawPanels(panels, draw.New(c)); err != nil {
		return nil, err
	}
	return c, nil
}

// FrameImage 光栅化一帧
func FrameImage(frame types.Frame, s Size) (*vgimg.Canvas, error) {
	c, err := Image(frame.Panels, s)
	if err != nil {
		return nil, fmt.Errorf("第 %d 帧: %w", frame.Index, err)
	}
	return c, nil
}

// WritePNG 输出 PNG
func WritePNG(w io.Writer, c *vgimg.Canvas) error {
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("写入 png 失败: %w", err)
	}
	return nil
}

func toXYs(pts []types.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}

// curveColor A 为 0 时取默认调色板
func curveColor(c color.NRGBA, i int) color.Color {
	if c.A == 0 {
		return plotutil.Color(i)
	}
	return c
}
