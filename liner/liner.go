package liner

import (
	"fmt"
	"image/color"
	"math"

	"semiplot/render"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// 颜色
var (
	black       = color.NRGBA{A: 255}
	lightGray   = color.NRGBA{R: 211, G: 211, B: 211, A: 255}
	skyBlue     = color.NRGBA{R: 135, G: 206, B: 235, A: 255}
	lightCoral  = color.NRGBA{R: 240, G: 128, B: 128, A: 255}
	lightGreen  = color.NRGBA{R: 144, G: 238, B: 144, A: 255}
	darkRed     = color.NRGBA{R: 139, A: 255}
	darkGreen   = color.NRGBA{G: 100, A: 255}
	blue        = color.NRGBA{B: 255, A: 255}
	navy        = color.NRGBA{B: 128, A: 255}
	translucent = color.NRGBA{R: 211, G: 211, B: 211, A: 77} // 30% 灰
)

// Rect 矩形区域
type Rect struct {
	X, Y, W, H float64
	Fill       color.NRGBA
	Edge       color.NRGBA // A 为 0 时不描边
	Label      string      // 图例，为空时不加入图例
}

// Text 文字
type Text struct {
	X, Y     float64
	Text     string
	Color    color.NRGBA
	Size     vg.Length
	Centered bool // 垂直居中，否则以基线对齐
	Italic   bool
}

// Arrow 箭头，头部画在 (X+DX, Y+DY) 之外
type Arrow struct {
	X, Y, DX, DY float64
	HeadWidth    float64
	HeadLength   float64
	Color        color.NRGBA
}

// Schematic 应力衬垫示意图
type Schematic struct {
	Title                  string
	XMin, XMax, YMin, YMax float64
	Rects                  []Rect
	Texts                  []Text
	Arrows                 []Arrow
}

// Default 晶体管沟道应力衬垫示意图
func Default(credit string) Schematic {
	s := Schematic{
		Title: "Stress Liners and Strain Impact on Transistor Channel",
		XMin:  -1,
		XMax:  11,
		YMin:  -1,
		YMax:  5,
		Rects: []Rect{
			{X: 0, Y: 0, W: 10, H: 2, Fill: lightGray, Edge: black, Label: "Substrate"},
			{X: 3, Y: 2, W: 4, H: 1, Fill: skyBlue, Edge: black, Label: "Channel"},
			{X: 0, Y: 3, W: 3, H: 1, Fill: lightCoral, Edge: black, Label: "Tensile Stress"},
			{X: 7, Y: 3, W: 3, H: 1, Fill: lightGreen, Edge: black, Label: "Compressive Stress"},
		},
		Texts: []Text{
			{X: 1.5, Y: 4, Text: "Tensile Stress Liner", Color: darkRed, Size: vg.Points(12)},
			{X: 8.5, Y: 4, Text: "Compressive Stress Liner", Color: darkGreen, Size: vg.Points(12)},
			{X: 5, Y: 3.5, Text: "Channel Region", Color: blue, Size: vg.Points(12)},
		},
		Arrows: []Arrow{
			{X: 1.5, Y: 3, DX: 0, DY: -0.5, HeadWidth: 0.2, HeadLength: 0.2, Color: darkRed},
			{X: 8.5, Y: 3, DX: 0, DY: -0.5, HeadWidth: 0.2, HeadLength: 0.2, Color: darkGreen},
		},
	}
	if credit != "" {
		s.Rects = append(s.Rects, Rect{X: 8, Y: -0.8, W: 3, H: 0.4, Fill: translucent})
		s.Texts = append(s.Texts, Text{X: 9.5, Y: -0.6, Text: credit, Color: navy, Size: vg.Points(10), Centered: true, Italic: true})
	}
	return s
}

// Plot 转换为 gonum 图表，坐标轴隐藏
func (s Schematic) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.Padding = vg.Points(20)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Font.Size = vg.Points(12)

	for _, r := range s.Rects {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: r.X, Y: r.Y}, {X: r.X + r.W, Y: r.Y}, {X: r.X + r.W, Y: r.Y + r.H}, {X: r.X, Y: r.Y + r.H},
		})
		if err != nil {
			return nil, fmt.Errorf("矩形 %q: %w", r.Label, err)
		}
		poly.Color = r.Fill
		if r.Edge.A == 0 {
			poly.LineStyle.Width = 0
		} else {
			poly.LineStyle.Color = r.Edge
		}
		p.Add(poly)
		if r.Label != "" {
			p.Legend.Add(r.Label, poly)
		}
	}
	for _, a := range s.Arrows {
		shaft, head, err := a.plotters()
		if err != nil {
			return nil, err
		}
		p.Add(shaft, head)
	}
	if len(s.Texts) > 0 {
		xyl := plotter.XYLabels{XYs: make(plotter.XYs, len(s.Texts)), Labels: make([]string, len(s.Texts))}
		for i, t := range s.Texts {
			xyl.XYs[i] = plotter.XY{X: t.X, Y: t.Y}
			xyl.Labels[i] = t.Text
		}
		labels, err := plotter.NewLabels(xyl)
		if err != nil {
			return nil, fmt.Errorf("文字: %w", err)
		}
		for i, t := range s.Texts {
			style := &labels.TextStyle[i]
			style.Color = t.Color
			style.Font.Size = t.Size
			style.XAlign = text.XCenter
			if t.Centered {
				style.YAlign = text.YCenter
			}
			if t.Italic {
				style.Font.Style = xfont.StyleItalic
			}
		}
		p.Add(labels)
	}

	p.HideAxes()
	p.X.Min, p.X.Max = s.XMin, s.XMax
	p.Y.Min, p.Y.Max = s.YMin, s.YMax
	return p, nil
}

// plotters 箭杆和箭头
func (a Arrow) plotters() (*plotter.Line, *plotter.Polygon, error) {
	l := math.Hypot(a.DX, a.DY)
	if l == 0 {
		return nil, nil, fmt.Errorf("箭头长度为 0: (%v, %v)", a.X, a.Y)
	}
	ux, uy := a.DX/l, a.DY/l // 方向
	px, py := -uy, ux       // 法向
	ex, ey := a.X+a.DX, a.Y+a.DY
	hw := a.HeadWidth / 2

	shaft, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: ex, Y: ey}})
	if err != nil {
		return nil, nil, err
	}
	shaft.LineStyle.Color = a.Color
	shaft.LineStyle.Width = vg.Points(1.5)

	head, err := plotter.NewPolygon(plotter.XYs{
		{X: ex + px*hw, Y: ey + py*hw},
		{X: ex + ux*a.HeadLength, Y: ey + uy*a.HeadLength},
		{X: ex - px*hw, Y: ey - py*hw},
	})
	if err != nil {
		return nil, nil, err
	}
	head.Color = a.Color
	head.LineStyle.Color = a.Color
	return shaft, head, nil
}

// Tip 箭头尖端坐标
func (a Arrow) Tip() (x, y float64) {
	l := math.Hypot(a.DX, a.DY)
	return a.X + a.DX + a.DX/l*a.HeadLength, a.Y + a.DY + a.DY/l*a.HeadLength
}

// Image 光栅化示意图，坐标范围按画布比例扩展以保持等比例
func (s Schematic) Image(size render.Size) (*vgimg.Canvas, error) {
	s.XMin, s.XMax, s.YMin, s.YMax = equalAspect(s.XMin, s.XMax, s.YMin, s.YMax, float64(size.Width/size.Height))
	p, err := s.Plot()
	if err != nil {
		return nil, err
	}
	c := render.NewCanvas(size)
	p.Draw(draw.New(c))
	return c, nil
}

// equalAspect 扩展数据范围使单位长度在两个方向相等
func equalAspect(xmin, xmax, ymin, ymax, ratio float64) (float64, float64, float64, float64) {
	w, h := xmax-xmin, ymax-ymin
	if w/h < ratio {
		pad := (h*ratio - w) / 2
		return xmin - pad, xmax + pad, ymin, ymax
	}
	pad := (w/ratio - h) / 2
	return xmin, xmax, ymin - pad, ymax + pad
}
