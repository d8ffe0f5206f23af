package components

import "image"

// CheckboxComponent 复选框（设置界面的静音开关）
type CheckboxComponent struct {
	Rect    image.Rectangle
	Label   string
	Checked bool
	Action  int
}
