package search

import (
	"strings"

	"github.com/emirpasic/gods/queues/priorityqueue"
)

// TermContribution 共同词对点积的贡献
type TermContribution struct {
	Word           string
	PaperCount     int
	ReferenceCount int
	Product        int
}

// contributionComparator 贡献大的优先出队，贡献相同按字典序
func contributionComparator(a, b interface{}) int {
	ca := a.(TermContribution)
	cb := b.(TermContribution)
	switch {
	case ca.Product > cb.Product:
		return -1
	case ca.Product < cb.Product:
		return 1
	default:
		return strings.Compare(ca.Word, cb.Word)
	}
}

// TopSharedTerms 返回对相似度贡献最大的 n 个共同词，n <= 0 时返回全部
func TopSharedTerms(a, b FrequencyMap, n int) []TermContribution {
	pq := priorityqueue.NewWith(contributionComparator)
	for word, countA := range a {
		countB, ok := b[word]
		if !ok {
			continue
		}
		pq.Enqueue(TermContribution{
			Word:           word,
			PaperCount:     countA,
			ReferenceCount: countB,
			Product:        countA * countB,
		})
	}

	if n <= 0 || n > pq.Size() {
		n = pq.Size()
	}
	terms := make([]TermContribution, 0, n)
	for i := 0; i < n; i++ {
		v, ok := pq.Dequeue()
		if !ok {
			break
		}
		terms = append(terms, v.(TermContribution))
	}
	return terms
}
