package epitaxy

import (
	"image/color"

	"semiplot/maths"
	"semiplot/types"
)

// 模型参数
const (
	MaxMismatch      = 2.0 // 失配扫描上限 (%)
	Samples          = 100 // 采样点数
	CriticalMismatch = 1.5 // 开始产生缺陷的临界失配 (%)
)

var (
	strainColor   = color.NRGBA{B: 255, A: 255}
	criticalColor = color.NRGBA{R: 255, A: 255}
)

// Strain 简化的应变模型 m/(1+m)
func Strain(mismatch float64) float64 {
	return mismatch / (1 + mismatch)
}

// Curve 应变随晶格失配变化曲线
func Curve() []types.Point {
	return maths.Points(maths.Span(0, MaxMismatch, Samples), Strain)
}

// Panel 生成图表数据
func Panel() types.Panel {
	strain := Curve()
	peak := maths.MaxY(strain)
	return types.Panel{
		Title:      "Strain Induced by Lattice Mismatch in Epitaxial Growth",
		XLabel:     "Lattice Mismatch (%)",
		YLabel:     "Induced Strain",
		XMin:       0,
		XMax:       MaxMismatch,
		YMin:       0,
		YMax:       peak * 1.05,
		Grid:       true,
		DashedGrid: true,
		Curves: []types.Curve{
			{Label: "Induced Strain", Points: strain, Color: strainColor},
			{
				Label:  "Critical Mismatch",
				Points: []types.Point{{X: CriticalMismatch, Y: 0}, {X: CriticalMismatch, Y: peak * 1.05}},
				Color:  criticalColor,
				Dashed: true,
			},
		},
		Annotations: []types.Annotation{{
			X:     CriticalMismatch + 0.1,
			Y:     peak * 0.5,
			Text:  "Critical Mismatch\n(Defects Form)",
			Color: criticalColor,
		}},
	}
}
