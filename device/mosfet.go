package device

import (
	"semiplot/maths"
	"semiplot/types"
)

// MOSFET 平方律 MOS 管模型
// PMOS 通过极性因子折算到 NMOS 公式，电压与电流符号相反
type MOSFET struct {
	Type types.DeviceType // 极性
	K    float64          // 工艺跨导
	VT   float64          // 阈值电压(PMOS 为负)
}

// NewNMOS 按器件常量创建 NMOS
func NewNMOS(c types.DeviceConstants) MOSFET {
	return MOSFET{Type: types.NMOS, K: c.KN, VT: c.VTN}
}

// NewPMOS 按器件常量创建 PMOS
func NewPMOS(c types.DeviceConstants) MOSFET {
	return MOSFET{Type: types.PMOS, K: c.KP, VT: c.VTP}
}

// polarity 极性因子
func (m MOSFET) polarity() float64 {
	if m.Type == types.PMOS {
		return -1
	}
	return 1
}

// overdrive 折算后的栅极过驱动电压
func (m MOSFET) overdrive(vgs float64) float64 {
	p := m.polarity()
	return p*vgs - p*m.VT
}

// On 是否导通
func (m MOSFET) On(vgs float64) bool { return m.overdrive(vgs) > 0 }

// SaturationVoltage 线性区与饱和区的分界 Vds
func (m MOSFET) SaturationVoltage(vgs float64) float64 { return vgs - m.VT }

// Region 判断工作区
func (m MOSFET) Region(vgs, vds float64) types.Region {
	vov := m.overdrive(vgs)
	if vov <= 0 {
		return types.RegionCutoff
	}
	if m.polarity()*vds <= vov {
		return types.RegionLinear
	}
	return types.RegionSaturation
}

// Ids 漏极电流
func (m MOSFET) Ids(vgs, vds float64) float64 {
	p := m.polarity()
	vov := m.overdrive(vgs)
	switch m.Region(vgs, vds) {
	case types.RegionLinear:
		v := p * vds
		return p * m.K * (vov*v - v*v/2)
	case types.RegionSaturation:
		return p * m.K * vov * vov / 2
	}
	return 0
}

// SweepVds 固定 Vgs 扫描 Vds
func (m MOSFET) SweepVds(vgs float64, grid []float64) []types.Point {
	return maths.Points(grid, func(vds float64) float64 { return m.Ids(vgs, vds) })
}

// SweepVgs 固定 Vds 扫描 Vgs
func (m MOSFET) SweepVgs(vds float64, grid []float64) []types.Point {
	return maths.Points(grid, func(vgs float64) float64 { return m.Ids(vgs, vds) })
}
