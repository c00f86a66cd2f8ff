package preview

import (
	"encoding/json"
	"io"
	"time"

	"semiplot/types"
)

// Record 记录渲染历史
type Record struct {
	Title    string        `json:"title"`    // 标题
	Interval time.Duration `json:"interval"` // 名义帧间隔
	Frames   []types.Frame `json:"frames"`   // 帧列表
}

// NewRecord 初始化
func NewRecord(title string, interval time.Duration) *Record {
	return &Record{Title: title, Interval: interval}
}

// Update 记录一帧
func (list *Record) Update(frame types.Frame) {
	list.Frames = append(list.Frames, frame)
}

// Len 已记录帧数
func (list *Record) Len() int { return len(list.Frames) }

// Frame 按序号取帧
func (list *Record) Frame(index int) (types.Frame, bool) {
	if index < 0 || index >= len(list.Frames) {
		return types.Frame{}, false
	}
	return list.Frames[index], true
}

// Render 格式化输出
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }
