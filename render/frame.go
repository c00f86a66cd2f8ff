package render

import (
	"fmt"
	"math"
	"time"

	"semiplot/device"
	"semiplot/maths"
	"semiplot/types"
)

// CurveCount 由帧序号得到曲线数量，在 [MinCurves, MaxCurves] 间正弦往返
func CurveCount(index int) int {
	return types.CurveCenter + int(types.CurveSwing*math.Sin(float64(index)*2*math.Pi/types.CurvePeriod))
}

// CurveCountOf 帧状态对应的曲线数量
func CurveCountOf(state types.FrameState) int { return CurveCount(state.Index) }

// Renderer 帧渲染器
type Renderer struct {
	NMOS     device.MOSFET
	PMOS     device.MOSFET
	Interval time.Duration // 名义帧间隔
	nGrid    []float64
	pGrid    []float64
}

// NewRenderer 创建渲染器，电压网格只计算一次
func NewRenderer(c types.DeviceConstants, interval time.Duration) *Renderer {
	return &Renderer{
		NMOS:     device.NewNMOS(c),
		PMOS:     device.NewPMOS(c),
		Interval: interval,
		nGrid:    maths.Values(types.NMOSGrid),
		pGrid:    maths.Values(types.PMOSGrid),
	}
}

// BuildFrame 生成指定帧的四个子图
func (r *Renderer) BuildFrame(index int) types.Frame {
	state := types.FrameState{Index: index}
	n := CurveCountOf(state)
	return types.Frame{
		Index:      index,
		Time:       time.Duration(index) * r.Interval,
		CurveCount: n,
		Panels: []types.Panel{
			r.idsVds(r.NMOS, "NMOS: Ids vs Vds", maths.Span(1, 5, n), r.nGrid, 0, 5),
			r.idsVgs(r.NMOS, "NMOS: Ids vs Vgs", maths.Span(1, 5, n), r.nGrid, 0, 5),
			r.idsVds(r.PMOS, "PMOS: Ids vs Vds", maths.Span(-5, -1, n), r.pGrid, -5, 0),
			r.idsVgs(r.PMOS, "PMOS: Ids vs Vgs", maths.Span(-5, -1, n), r.pGrid, -5, 0),
		},
	}
}

// idsVds 输出特性曲线，并标记饱和点
func (r *Renderer) idsVds(m device.MOSFET, title string, vgsValues, grid []float64, lo, hi float64) types.Panel {
	panel := newPanel(title, "Vds (V)", lo, hi)
	for _, vgs := range vgsValues {
		panel.Curves = append(panel.Curves, types.Curve{
			Label:  fmt.Sprintf("Vgs=%.1fV", vgs),
			Points: m.SweepVds(vgs, grid),
		})
		vsat := m.SaturationVoltage(vgs)
		// 饱和点落在绘图区内才标记
		if (m.Type == types.NMOS && vsat > 0) || (m.Type == types.PMOS && vsat < 0) {
			panel.Markers = append(panel.Markers, types.Point{X: vsat, Y: m.Ids(vgs, vsat)})
		}
	}
	return panel
}

// idsVgs 转移特性曲线
func (r *Renderer) idsVgs(m device.MOSFET, title string, vdsValues, grid []float64, lo, hi float64) types.Panel {
	panel := newPanel(title, "Vgs (V)", lo, hi)
	for _, vds := range vdsValues {
		panel.Curves = append(panel.Curves, types.Curve{
			Label:  fmt.Sprintf("Vds=%.1fV", vds),
			Points: m.SweepVgs(vds, grid),
		})
	}
	return panel
}

func newPanel(title, xLabel string, lo, hi float64) types.Panel {
	return types.Panel{
		Title:  title,
		XLabel: xLabel,
		YLabel: "Ids (mA)",
		XMin:   lo,
		XMax:   hi,
		YMin:   lo,
		YMax:   hi,
		Grid:   true,
	}
}
