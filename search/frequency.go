package search

import "sort"

// FrequencyMap 词频映射，出现在其中的词计数都大于 0
type FrequencyMap map[string]int

// BuildFrequency 统计每个词出现的次数，空序列返回空映射
func BuildFrequency(tokens []string) FrequencyMap {
	freq := make(FrequencyMap, len(tokens))
	for _, token := range tokens {
		freq[token]++
	}
	return freq
}

// Total 所有词出现次数之和
func (fm FrequencyMap) Total() int {
	total := 0
	for _, count := range fm {
		total += count
	}
	return total
}

// Keys 按字典序返回所有词
func (fm FrequencyMap) Keys() []string {
	keys := make([]string, 0, len(fm))
	for k := range fm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
