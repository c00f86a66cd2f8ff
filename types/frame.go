package types

import (
	"image/color"
	"time"
)

// Point 坐标点
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve 一条曲线
type Curve struct {
	Label  string      `json:"label"`
	Points []Point     `json:"points"`
	Color  color.NRGBA `json:"-"`      // A 为 0 时使用默认调色板
	Dashed bool        `json:"dashed"` // 虚线
}

// Annotation 文字标注
type Annotation struct {
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	Text  string      `json:"text"`
	Color color.NRGBA `json:"-"`
}

// Panel 一个子图
type Panel struct {
	Title       string       `json:"title"`
	XLabel      string       `json:"xLabel"`
	YLabel      string       `json:"yLabel"`
	XMin        float64      `json:"xMin"`
	XMax        float64      `json:"xMax"`
	YMin        float64      `json:"yMin"`
	YMax        float64      `json:"yMax"`
	Grid        bool         `json:"grid"`
	DashedGrid  bool         `json:"dashedGrid"`
	Curves      []Curve      `json:"curves"`
	Markers     []Point      `json:"markers"` // 饱和点
	Annotations []Annotation `json:"annotations"`
}

// FrameState 动画帧状态，只有帧序号会变化
type FrameState struct {
	Index int
}

// Frame 一帧渲染数据
type Frame struct {
	Index      int           `json:"index"`
	Time       time.Duration `json:"time"`
	CurveCount int           `json:"curveCount"`
	Panels     []Panel       `json:"panels"`
}
