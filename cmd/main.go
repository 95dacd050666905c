package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/dockwatch/inventory-agent/agent"
	"github.com/dockwatch/inventory-agent/internal/config"
	"github.com/dockwatch/inventory-agent/internal/env"
	"github.com/dockwatch/inventory-agent/internal/logger"
)

const fullAppName = "Dockwatch Inventory Agent. "

func agentLock() {
	pidStr, _ := ioutil.ReadFile(env.LockFile)
	pid, _ := strconv.Atoi(strings.ReplaceAll(string(pidStr), "\n", ""))

	if pid > 0 {
		_, err := os.Stat(fmt.Sprintf("/proc/%d", pid))
		if err == nil {
			// Another agent instance is running. Exit.
			logger.Error().Println(fullAppName, "Another agent instance is running")
			logger.Error().Println(fullAppName, "check lock file", env.LockFile)
			os.Exit(-int(unix.EBUSY))
		}
		// Agent is not running, just a residual lock file. Continue.
		logger.Warning().Println(fullAppName, "residual lock file found. An agent was killed or crashed before?")
	}

	ioutil.WriteFile(env.LockFile, []byte(strconv.Itoa(os.Getpid())), 0644)
}

func agentUnlock() {
	os.Remove(env.LockFile)
}

func main() {
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	execName := os.Args[0]

	showVersionAndExit := flag.Bool("version", false, "Show version and exit")

	flag.Parse()
	if *showVersionAndExit {
		fmt.Printf("%s (%s):\t%s\n\n", fullAppName, execName, config.GetFullVersion())
		return
	}

	agentLock()
	defer agentUnlock()

	env.Init()
	config.Init()
	defer config.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inventoryAgent, err := agent.NewAgent(ctx, config.GetControllerType())
	if err != nil {
		logger.Error().Println(fullAppName, "Could not create agent", err)
		exitCode = -int(unix.ENOMEM)
		return
	}

	logger.Info().Println(fullAppName, execName, config.GetFullVersion(), "started.")
	logger.Info().Println(fullAppName, "Using controller type:", config.GetControllerName(config.GetControllerType()))

	// Start main agent loop
	go func() {
		if err := inventoryAgent.Run(); err != nil {
			logger.Error().Println(fullAppName, "agent loop:", err)
			cancel()
		}
	}()

	// Wait for SIGINT to terminate the app
	terminate := make(chan os.Signal, 1)
	signal.Notify(terminate, os.Interrupt)
	select {
	case <-terminate:
	case <-ctx.Done():
	}

	logger.Info().Println(fullAppName, "terminating")
	inventoryAgent.Stop()
}
