package main

import (
	"fmt"
	"os"

	"grammologue/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		logger.Get().Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
