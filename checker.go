package PaperCheck

import (
	"errors"
	"fmt"
	"time"

	"PaperCheck/fio"
	"PaperCheck/logger"
	"PaperCheck/search"
	"PaperCheck/search/match_method"
)

// Result 一次查重的结果
type Result struct {
	Similarity      float64                   // 余弦相似度 [0, 1]
	Formatted       string                    // 写入结果文件的内容
	PaperTokens     int                       // 原文过滤后的词数
	ReferenceTokens int                       // 待检测文本过滤后的词数
	Shared          []search.TermContribution // 贡献最大的共同词
}

// Checker 论文查重器，持有分词器和过滤器
type Checker struct {
	options   Options
	segmenter search.Segmenter
	pipeline  *search.Pipeline
}

// Open 根据配置创建查重器，词典加载失败直接返回错误，不重试
func Open(options Options) (*Checker, error) {
	if err := checkOptions(options); err != nil {
		return nil, err
	}
	segType, _ := search.ParseSegmenterType(options.Segmenter)

	extra := append([]string{}, options.ExtraStopwords...)
	if options.StopwordFile != "" {
		words, err := loadStopwordFile(options.StopwordFile)
		if err != nil {
			return nil, err
		}
		extra = append(extra, words...)
	}

	segmenter, err := search.NewSegmenter(segType, search.SegmentOptions{
		UseHMM: options.UseHMM,
		Dicts: match_method.JiebaDicts{
			DictPath:      options.DictPath,
			HMMPath:       options.HMMPath,
			UserDictPath:  options.UserDictPath,
			IdfPath:       options.IdfPath,
			StopWordsPath: options.StopWordsPath,
		},
	})
	if err != nil {
		if errors.Is(err, match_method.ErrDictionaryNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrDictionaryLoad, err)
		}
		return nil, err
	}

	filter := search.NewFilter(search.NewStopwordSet(extra...), options.MinTokenLen)
	return &Checker{
		options:   options,
		segmenter: segmenter,
		pipeline:  search.NewPipeline(segmenter, filter),
	}, nil
}

// Close 释放分词器
func (c *Checker) Close() {
	if c.segmenter != nil {
		c.segmenter.Close()
		c.segmenter = nil
	}
}

// Compare 对两段文本进行查重
func (c *Checker) Compare(paper, reference string) *Result {
	log := logger.WithComponent("checker")
	start := time.Now()

	paperFreq := c.pipeline.Vectorize(paper)
	referenceFreq := c.pipeline.Vectorize(reference)
	similarity := search.Cosine(paperFreq, referenceFreq)

	result := &Result{
		Similarity:      similarity,
		Formatted:       search.FormatPercent(similarity),
		PaperTokens:     paperFreq.Total(),
		ReferenceTokens: referenceFreq.Total(),
	}
	if c.options.TopTerms > 0 {
		result.Shared = search.TopSharedTerms(paperFreq, referenceFreq, c.options.TopTerms)
	}

	log.Debug("similarity computed",
		"paper_tokens", result.PaperTokens,
		"paper_vocabulary", len(paperFreq),
		"reference_tokens", result.ReferenceTokens,
		"reference_vocabulary", len(referenceFreq),
		"similarity", similarity,
		"elapsed", time.Since(start))
	return result
}

// Check 读取两篇文档，计算相似度并把结果写入 resultPath
func (c *Checker) Check(paperPath, referencePath, resultPath string) (*Result, error) {
	// 1.检查文件路径
	if err := fio.CheckRegularFile(paperPath); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPaperNotFound, paperPath, err)
	}
	if err := fio.CheckRegularFile(referencePath); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReferenceNotFound, referencePath, err)
	}
	if err := fio.EnsureParentDir(resultPath); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResultDir, err)
	}

	// 2.读取文件内容
	paper, err := fio.ReadDocument(paperPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDocument, paperPath, err)
	}
	reference, err := fio.ReadDocument(referencePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDocument, referencePath, err)
	}

	// 3.计算相似度
	result := c.Compare(paper, reference)

	// 4.保存结果
	if err := SaveResult(resultPath, result); err != nil {
		return nil, err
	}
	return result, nil
}

// SaveResult 结果文件只包含两位小数的百分数，UTF-8 无 BOM，无换行
func SaveResult(resultPath string, result *Result) error {
	if err := fio.WriteFileAtomic(resultPath, []byte(result.Formatted)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteResult, resultPath, err)
	}
	return nil
}
