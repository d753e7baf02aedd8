package commands

import (
	"os"

	"emogo/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("emogo error", "err", err.Error())
	os.Exit(1)
}
