package main

import (
	"log"
	"os"

	"github.com/trezcool/mahudhurio/core"
	logsvc "github.com/trezcool/mahudhurio/services/logger"
	notifysvc "github.com/trezcool/mahudhurio/services/notify"
)

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()

	// logs go to stderr so the screens on stdout stay readable
	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "DASHBOARD : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(conf.RollbarToken != "" && !conf.Debug)
	notifier := notifysvc.NewConsoleService(os.Stdout, conf)

	cli, err := newCommandLine(conf, logger, notifier, os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal("starting dashboard", err)
	}
	if err := cli.run(os.Args); err != nil {
		logger.Error("dashboard", err)
		_, _ = os.Stdout.WriteString("\nerror: " + err.Error() + "\n")
		os.Exit(1)
	}
}
