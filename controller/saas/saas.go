package saas

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/dockwatch/inventory-agent/agent/common"
	"github.com/dockwatch/inventory-agent/internal/config"
	"github.com/dockwatch/inventory-agent/internal/logger"
)

const pkgName = "SaasController. "

const (
	stopped = iota
	running
)

// CloudController talks to the hosted management platform over a
// websocket connection.
type CloudController struct {
	sync.Mutex
	state   uint32 // atomic
	ws      *websocket.Conn
	ctx     context.Context
	url     string
	token   string
	version string
}

// New connects to the management platform.
// Note: config package returns already validated values and no need to validate them here
func New(ctx context.Context) (common.Controller, error) {
	cc := CloudController{
		ctx:     ctx,
		url:     config.GetCloudURL(),
		token:   config.GetAgentToken(),
		version: config.GetFullVersion(),
		state:   stopped,
	}

	if err := cc.connect(); err != nil {
		return nil, err
	}

	return &cc, nil
}

func (cc *CloudController) connect() (err error) {
	url := url.URL{Scheme: "wss", Host: cc.url, Path: "/"}
	headers := http.Header(make(map[string][]string))

	// Without these headers the platform drops the connection silently
	headers.Set("authorization", cc.token)
	headers.Set("x-deviceid", config.GetDeviceID())
	headers.Set("x-devicename", config.GetAgentName())
	headers.Set("x-agenttype", "Linux")
	headers.Set("x-agentversion", cc.version)

	var resp *http.Response
	var httpCode int
	cc.ws, resp, err = websocket.DefaultDialer.Dial(url.String(), headers)
	if err != nil {
		if resp != nil {
			httpCode = resp.StatusCode
		}
		logger.Error().Printf("%s dialer error: %s (HTTP: %d)\n", pkgName, err.Error(), httpCode)
		return err
	}

	atomic.StoreUint32(&cc.state, running)

	return nil
}

func (cc *CloudController) Recv() ([]byte, error) {
	// Single reader in this application, no locking here

	for {
		_, msg, err := cc.ws.ReadMessage()

		switch {
		case err == nil:
			return msg, nil

		case atomic.LoadUint32(&cc.state) == stopped:
			// The connection is closed - simulate EOF
			logger.Info().Println(pkgName, "connection is closed")
			return nil, io.EOF
		}

		select {
		case <-cc.ctx.Done():
			return nil, io.EOF
		default:
		}

		logger.Warning().Println(pkgName, "receive error:", err, ". Reconnecting...")
		cc.connect()
	}
}

func (cc *CloudController) Write(b []byte) (n int, err error) {
	if atomic.LoadUint32(&cc.state) == stopped {
		return 0, fmt.Errorf("controller is not running")
	}

	/*
		gorilla/websocket concurrency:
			Connections support one concurrent reader and one concurrent writer.
			Applications are responsible for ensuring that no more than one goroutine calls the write methods
	*/
	cc.Lock()
	defer cc.Unlock()

	err = cc.ws.WriteMessage(websocket.TextMessage, b)
	if err != nil {
		logger.Error().Println(pkgName, "websocket write error:", err)
	} else {
		n = len(b)
	}
	return n, err
}

// Close cleanly terminates the connection to the platform
func (cc *CloudController) Close() error {
	if !atomic.CompareAndSwapUint32(&cc.state, running, stopped) {
		return fmt.Errorf("controller already closed")
	}

	err := cc.ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if err != nil {
		logger.Error().Println(pkgName, "write close:", err)
	}

	return cc.ws.Close()
}

// Compile time sanity test
var _ common.Controller = &CloudController{}
