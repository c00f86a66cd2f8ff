package maths

import (
	"semiplot/types"

	"gonum.org/v1/gonum/floats"
)

// Span 生成 [min, max] 上 n 个等间距采样点，端点精确
// n 为 1 时只返回起点，n 小于 1 时返回空切片
func Span(min, max float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{min}
	}
	s := floats.Span(make([]float64, n), min, max)
	s[n-1] = max
	return s
}

// Values 电压采样序列
func Values(grid types.VoltageGrid) []float64 {
	return Span(grid.Min, grid.Max, grid.N)
}

// Points 组合坐标点
func Points(xs []float64, f func(x float64) float64) []types.Point {
	pts := make([]types.Point, len(xs))
	for i, x := range xs {
		pts[i] = types.Point{X: x, Y: f(x)}
	}
	return pts
}

// MaxY 最大纵坐标，空序列返回 0
func MaxY(pts []types.Point) float64 {
	if len(pts) == 0 {
		return 0
	}
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = p.Y
	}
	return floats.Max(ys)
}
