package inventory

import (
	"context"
	"encoding/json"
	"io"

	"github.com/dockwatch/inventory-agent/agent/common"
	"github.com/dockwatch/inventory-agent/internal/logger"
)

const (
	cmd = "CONTAINER_INVENTORY"

	cmdGet    = cmd + "_GET"
	cmdCreate = cmd + "_CREATE"
	cmdModify = cmd + "_MODIFY"
	cmdDelete = cmd + "_DELETE"
)

// inventoryCmd answers CONTAINER_INVENTORY enumerate requests with a
// fresh full sweep.
type inventoryCmd struct {
	writer    io.Writer
	collector *Collector
}

func New(w io.Writer, c *Collector) common.Command {
	return &inventoryCmd{
		writer:    w,
		collector: c,
	}
}

func (obj *inventoryCmd) Name() string {
	return cmd
}

func (obj *inventoryCmd) Exec(raw []byte) error {
	var req inventoryRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return err
	}

	resp := inventoryMessage{
		MessageHeader: req.MessageHeader,
	}
	resp.Now()
	resp.Data = obj.collector.Sweep(context.Background())

	arr, err := json.Marshal(&resp)
	if err != nil {
		return err
	}

	_, err = obj.writer.Write(arr)
	return err
}

// UnsupportedCommands lists the single-instance and mutating operations
// this provider permanently refuses.
func UnsupportedCommands() []string {
	return []string{cmdGet, cmdCreate, cmdModify, cmdDelete}
}

// unsupportedCmd signals a permanent capability boundary: inventory is
// read-only and enumerate-only.
type unsupportedCmd struct {
	writer io.Writer
	name   string
}

func NewUnsupported(w io.Writer, name string) common.Command {
	return &unsupportedCmd{
		writer: w,
		name:   name,
	}
}

func (obj *unsupportedCmd) Name() string {
	return obj.name
}

func (obj *unsupportedCmd) Exec(raw []byte) error {
	var req inventoryRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return err
	}

	logger.Debug().Println(pkgName, "rejecting", obj.name)

	resp := common.ErrorResponse{
		MessageHeader: req.MessageHeader,
	}
	resp.Now()
	resp.Data.Type = "NOT_SUPPORTED"
	resp.Data.Message = obj.name + " is not supported"

	arr, err := json.Marshal(&resp)
	if err != nil {
		return err
	}

	_, err = obj.writer.Write(arr)
	return err
}
