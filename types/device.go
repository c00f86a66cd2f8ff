package types

// DeviceType 器件极性
type DeviceType int

const (
	NMOS DeviceType = iota
	PMOS
)

func (t DeviceType) String() string {
	switch t {
	case NMOS:
		return "NMOS"
	case PMOS:
		return "PMOS"
	}
	return "Unknown"
}

// Region 工作区
type Region int

const (
	RegionCutoff     Region = iota // 截止区
	RegionLinear                   // 线性(三极管)区
	RegionSaturation               // 饱和区
)

func (r Region) String() string {
	switch r {
	case RegionCutoff:
		return "cutoff"
	case RegionLinear:
		return "linear"
	case RegionSaturation:
		return "saturation"
	}
	return "unknown"
}

// DeviceConstants 器件常量，启动时确定之后不再修改
type DeviceConstants struct {
	KN  float64 `json:"kn" mapstructure:"kn" validate:"gt=0"`  // NMOS 跨导系数
	KP  float64 `json:"kp" mapstructure:"kp" validate:"gt=0"`  // PMOS 跨导系数
	VTN float64 `json:"vtn" mapstructure:"vtn" validate:"gt=0"` // NMOS 阈值电压
	VTP float64 `json:"vtp" mapstructure:"vtp" validate:"lt=0"` // PMOS 阈值电压
}

// VoltageGrid 等间距电压采样
type VoltageGrid struct {
	Min float64 // 起点(包含)
	Max float64 // 终点(包含)
	N   int     // 采样点数
}
