package PaperCheck

import "errors"

var (
	ErrInvalidArgs       = errors.New("invalid arguments: expected <paperPath> <referencePath> <resultPath>")
	ErrPaperNotFound     = errors.New("paper file not found or not a regular file")
	ErrReferenceNotFound = errors.New("reference file not found or not a regular file")
	ErrResultDir         = errors.New("failed to create result directory")
	ErrReadDocument      = errors.New("failed to read document")
	ErrWriteResult       = errors.New("failed to write result file")
	ErrDictionaryLoad    = errors.New("failed to load segmentation dictionary")
	ErrInvalidOptions    = errors.New("invalid options")
	ErrConfigLoad        = errors.New("failed to load config")
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode 参数错误与IO错误使用不同的退出码
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidArgs):
		return ExitUsage
	default:
		return ExitFailure
	}
}
