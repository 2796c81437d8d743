package utils

import (
	"sort"

	"github.com/zooyer/geodxf/entities"
)

// GetAttrs 汇总块参照的属性，同名标签以后出现的为准
func GetAttrs(ins *entities.Insert) map[string]string {
	attrs := make(map[string]string, len(ins.Attributes))
	for _, a := range ins.Attributes {
		attrs[a.Tag] = a.Text
	}
	return attrs
}

// GetAttr 按标签取属性值，不存在时返回空串
func GetAttr(ins *entities.Insert, tag string) (text string) {
	for _, a := range ins.Attributes {
		if a.Tag == tag {
			text = a.Text
		}
	}
	return
}

// AttrTags 返回排序后的属性标签，便于稳定输出
func AttrTags(ins *entities.Insert) []string {
	tags := make([]string, 0, len(ins.Attributes))
	for tag := range GetAttrs(ins) {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
