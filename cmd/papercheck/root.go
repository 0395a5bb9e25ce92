package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"PaperCheck"
	"PaperCheck/logger"
	"PaperCheck/search"
)

type rootFlags struct {
	config    string
	logLevel  string
	logFormat string
	top       int
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "papercheck <paperPath> <referencePath> <resultPath>",
		Short:         "论文查重：计算两篇文档的余弦相似度",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("%w: got %d", PaperCheck.ErrInvalidArgs, len(args))
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFlags(flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, args[0], args[1], args[2])
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", PaperCheck.ErrInvalidArgs, err)
	})

	rootCmd.Flags().StringVarP(&flags.config, "config", "c", "", "Configuration file path (YAML)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.Flags().IntVar(&flags.top, "top", 0, "Print the N shared terms contributing most to the score")

	return rootCmd
}

// validateFlags 非法的参数值与参数个数错误一样按使用错误退出
func validateFlags(flags *rootFlags) error {
	if flags.top < 0 {
		return fmt.Errorf("%w: --top must not be negative, got %d", PaperCheck.ErrInvalidArgs, flags.top)
	}
	if err := logger.Validate(flags.logLevel, flags.logFormat); err != nil {
		return fmt.Errorf("%w: %v", PaperCheck.ErrInvalidArgs, err)
	}
	return nil
}

func runCheck(cmd *cobra.Command, flags *rootFlags, paperPath, referencePath, resultPath string) error {
	logger.Setup(cmd.ErrOrStderr(), flags.logLevel, flags.logFormat)

	options, err := PaperCheck.LoadConfig(flags.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("top") {
		options.TopTerms = flags.top
	}

	checker, err := PaperCheck.Open(options)
	if err != nil {
		return err
	}
	defer checker.Close()

	result, err := checker.Check(paperPath, referencePath, resultPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "论文查重完成，结果已保存至: "+resultPath)
	fmt.Fprintln(out, search.ConsoleLine(result.Similarity))
	if len(result.Shared) > 0 {
		printSharedTerms(cmd, result)
	}
	return nil
}

func printSharedTerms(cmd *cobra.Command, result *PaperCheck.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "主要重复词:")
	for i, term := range result.Shared {
		fmt.Fprintf(out, "%3d. %s\t%d × %d\n", i+1, term.Word, term.PaperCount, term.ReferenceCount)
	}
}
