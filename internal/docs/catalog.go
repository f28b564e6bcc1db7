package docs

import "sort"

// Entry is the documentation shown for one Luna symbol
type Entry struct {
	// Signature is a one-line summary of how the symbol is declared or invoked
	Signature string `json:"signature"`
	// Body is the markdown description
	Body string `json:"body"`
}

// catalog holds every documented symbol. Classes, methods, properties and
// keywords share one flat namespace; keys are matched case-sensitively.
var catalog = map[string]Entry{
	// Classes
	"Clip": {
		Signature: "Class: Clip(path: String)",
		Body:      "创建一个新的素材实例并加载视频元数据。\n\n**参数**:\n- `path`: 视频文件路径\n\n**示例**:\n`var c = Clip(\"video.mp4\")`",
	},
	"Timeline": {
		Signature: "Class: Timeline(width, height, fps)",
		Body:      "创建一个新的时间线，用于管理轨道和素材合成。\n\n**参数**:\n- `width`: 画布宽度\n- `height`: 画布高度\n- `fps`: 帧率",
	},
	"Project": {
		Signature: "Class: Project(width, height, fps)",
		Body:      "最高层级的项目容器，负责全局配置和预览。\n\n**方法**:\n- `setTimeline(tl)`\n- `preview()`",
	},

	// Clip methods
	"trim": {
		Signature: "Method: trim(start, duration)",
		Body:      "裁剪素材。\n\n**参数**:\n- `start`: 入点时间(秒)\n- `duration`: 持续时长(秒)",
	},
	"setScale": {
		Signature: "Method: setScale(sx, [sy])",
		Body:      "设置素材缩放比例。\n\n**示例**:\n`clip.setScale(0.5)`",
	},
	"setPos": {
		Signature: "Method: setPos(x, y)",
		Body:      "设置素材在画布上的坐标(像素)。",
	},
	"setOpacity": {
		Signature: "Method: setOpacity(opacity)",
		Body:      "设置不透明度 (0.0 - 1.0)。",
	},
	"export": {
		Signature: "Method: export(filename)",
		Body:      "导出当前素材为文件。",
	},

	// Timeline methods
	"add": {
		Signature: "Method: add(trackId, clip, startTime)",
		Body:      "将素材添加到指定轨道。\n\n**参数**:\n- `trackId`: 轨道索引(0, 1...)\n- `clip`: Clip对象\n- `startTime`: 时间线上的开始时间(秒)",
	},

	// Project methods
	"setTimeline": {
		Signature: "Method: setTimeline(timeline)",
		Body:      "将时间线绑定到项目。",
	},
	"preview": {
		Signature: "Method: preview()",
		Body:      "启动图形窗口进行实时预览。",
	},

	// Properties
	"width":    {Signature: "Property: width (Number)", Body: "宽度 (只读)"},
	"height":   {Signature: "Property: height (Number)", Body: "高度 (只读)"},
	"fps":      {Signature: "Property: fps (Number)", Body: "帧率 (只读)"},
	"duration": {Signature: "Property: duration (Number)", Body: "持续时间 (秒)"},
	"in_point": {Signature: "Property: in_point (Number)", Body: "素材入点偏移量"},

	// Keywords and builtins
	"print": {Signature: "Keyword: print", Body: "将内容输出到控制台。"},
	"var":   {Signature: "Keyword: var", Body: "声明一个变量。"},
}

// Lookup returns the entry registered for name. The match is exact: no case
// folding and no whitespace trimming.
func Lookup(name string) (Entry, bool) {
	entry, ok := catalog[name]
	return entry, ok
}

// Names returns all documented symbol names in sorted order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of documented symbols
func Len() int {
	return len(catalog)
}
