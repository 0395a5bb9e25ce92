package main

import (
	"fmt"
	"io"
	"os"

	"PaperCheck"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run 执行命令并返回退出码，参数错误与IO错误的退出码不同
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "错误:", err)
		return PaperCheck.ExitCode(err)
	}
	return PaperCheck.ExitOK
}
