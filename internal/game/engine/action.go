package engine

import "github.com/spf13/cast"

// Action 一条玩家操作 {type, ...payload}。
// Count/Index 保持原始 JSON 值，执行时再防御性解析。
type Action struct {
	Type  string
	Name  string
	Count interface{}
	Index interface{}
}

// ParseAction 从信封 Data（任意 JSON 对象）还原 Action，
// 字段缺失/类型不对都容忍，后面的 clamp 兜底
func ParseAction(data interface{}) Action {
	m := cast.ToStringMap(data)
	return Action{
		Type:  cast.ToString(m["type"]),
		Name:  cast.ToString(m["name"]),
		Count: m["count"],
		Index: m["index"],
	}
}

// dealCount 缺失/非数字回退 1，夹到 [0,10]
func dealCount(v interface{}) int {
	n := 1
	if v != nil {
		if parsed, err := cast.ToIntE(v); err == nil {
			n = parsed
		}
	}
	return clamp(n, 0, 10)
}

// playIndex 缺失/非数字回退 -1，粗夹到 [-1,999]，手牌边界在调用处把关
func playIndex(v interface{}) int {
	n := -1
	if v != nil {
		if parsed, err := cast.ToIntE(v); err == nil {
			n = parsed
		}
	}
	return clamp(n, -1, 999)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
