package search

import (
	"math"
	"strconv"
)

// FormatPercent 将相似度转换为保留两位小数的百分数，四舍五入，不带百分号和换行
func FormatPercent(similarity float64) string {
	percent := math.Floor(similarity*100*100+0.5) / 100
	return strconv.FormatFloat(percent, 'f', 2, 64)
}

// ConsoleLine 控制台输出的重复率提示
func ConsoleLine(similarity float64) string {
	return "重复率: " + FormatPercent(similarity) + "%"
}
