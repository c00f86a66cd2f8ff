package types

import "time"

// 器件默认参数
var DefaultDevice = DeviceConstants{
	KN:  0.5,  // NMOS 工艺跨导
	KP:  0.25, // PMOS 工艺跨导
	VTN: 1.0,  // NMOS 阈值电压
	VTP: -1.0, // PMOS 阈值电压
}

// 电压扫描范围
var (
	NMOSGrid = VoltageGrid{Min: 0, Max: 5, N: 100}  // NMOS 扫描 0..5V
	PMOSGrid = VoltageGrid{Min: -5, Max: 0, N: 100} // PMOS 扫描 -5..0V
)

// 动画默认参数
const (
	NumFrames     = 300                   // 总帧数 (~10 秒)
	FrameInterval = 33 * time.Millisecond // 名义帧间隔 (~30fps)
	FrameRate     = 30                    // 视频帧率
	Bitrate       = 2000                  // 视频码率 kbit/s
	CurvePeriod   = 150                   // 曲线数量变化周期(帧)
	CurveCenter   = 3                     // 曲线数量中值
	CurveSwing    = 2                     // 曲线数量摆幅
	MinCurves     = CurveCenter - CurveSwing
	MaxCurves     = CurveCenter + CurveSwing
)

// 默认输出文件
const (
	DefaultVideoFile   = "mosfet_iv.mp4"
	DefaultEpitaxyFile = "epitaxial_strain.png"
	DefaultLinerFile   = "stress_liners.png"
)
