package search

import (
	"math"

	"github.com/google/btree"
)

// vocabItem 词表中的一个词，按字典序排列
type vocabItem struct {
	word string
}

func (it *vocabItem) Less(than btree.Item) bool {
	return it.word < than.(*vocabItem).word
}

// vocabulary 两个词频映射的键并集，保证求和顺序固定
func vocabulary(a, b FrequencyMap) *btree.BTree {
	tree := btree.New(32)
	for w := range a {
		tree.ReplaceOrInsert(&vocabItem{word: w})
	}
	for w := range b {
		tree.ReplaceOrInsert(&vocabItem{word: w})
	}
	return tree
}

// Cosine 计算两个词频向量的余弦相似度，结果在 [0, 1] 之间
func Cosine(a, b FrequencyMap) float64 {
	// 任一文本为空直接返回 0，不计算范数
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	dotProduct := 0.0
	normA := 0.0
	normB := 0.0
	vocabulary(a, b).Ascend(func(item btree.Item) bool {
		word := item.(*vocabItem).word
		countA := float64(a[word])
		countB := float64(b[word])

		dotProduct += countA * countB
		normA += countA * countA
		normB += countB * countB
		return true
	})

	denominator := math.Sqrt(normA) * math.Sqrt(normB)
	if denominator == 0 {
		return 0.0
	}
	similarity := dotProduct / denominator
	// 浮点误差可能让相同向量略大于 1
	if similarity > 1 {
		return 1.0
	}
	if similarity < 0 || math.IsNaN(similarity) {
		return 0.0
	}
	return similarity
}
