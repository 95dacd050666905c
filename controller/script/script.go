package script

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"

	"github.com/dockwatch/inventory-agent/agent/common"
	"github.com/dockwatch/inventory-agent/internal/env"
	"github.com/dockwatch/inventory-agent/internal/logger"
)

const pkgName = "ScriptController. "

// ScriptController replays command files from the script directory.
// Useful for provisioning without a platform connection and for local
// debugging: each file is one management message.
type ScriptController struct {
	list    []string
	index   int
	timeout time.Duration
	ctx     context.Context
}

func New(ctx context.Context) (common.Controller, error) {
	cc := ScriptController{
		timeout: time.Second,
		ctx:     ctx,
	}

	// An optional SCRIPT index file fixes the replay order,
	// otherwise the directory listing is used
	index, err := ioutil.ReadFile(env.ScriptDir + "/SCRIPT")
	if err != nil {
		files, err := ioutil.ReadDir(env.ScriptDir)
		if err != nil {
			return nil, fmt.Errorf("could not initialise script controller: %s", err.Error())
		}
		for _, file := range files {
			cc.list = append(cc.list, file.Name())
		}
	} else {
		cc.list = strings.Split(string(index), "\n")
	}

	return &cc, nil
}

func (cc *ScriptController) Recv() ([]byte, error) {
	// Some delay before starting
	time.Sleep(cc.timeout)

	for cc.index < len(cc.list) {
		fname := cc.list[cc.index]
		cc.index++
		if fname == "" || fname[0] == '#' || fname == "SCRIPT" {
			continue
		}

		msg, err := ioutil.ReadFile(env.ScriptDir + "/" + fname)
		if err != nil {
			logger.Error().Printf("%s file %s: %s\n", pkgName, fname, err.Error())
			continue
		}
		logger.Debug().Printf("%s receiving \"%s\"\n", pkgName, fname)

		return msg, nil
	}

	// No more command files - block the Recv and keep the agent waiting
	logger.Debug().Println(pkgName, "no more messages")
	<-cc.ctx.Done()
	return nil, io.EOF
}

// Write sends nowhere
func (cc *ScriptController) Write(b []byte) (n int, err error) {
	logger.Debug().Println(pkgName, "writing:", string(b))
	return len(b), nil
}

func (cc *ScriptController) Close() error {
	logger.Info().Println(pkgName, "closing")
	return nil
}

// Compile time sanity test
var _ common.Controller = &ScriptController{}
