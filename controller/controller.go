package controller

import (
	"context"
	"fmt"

	"github.com/dockwatch/inventory-agent/agent/common"
	"github.com/dockwatch/inventory-agent/controller/saas"
	"github.com/dockwatch/inventory-agent/controller/script"
	"github.com/dockwatch/inventory-agent/internal/config"
)

func New(ctx context.Context, contype int) (controller common.Controller, err error) {
	switch contype {
	case config.ControllerSaas:
		controller, err = saas.New(ctx)
	case config.ControllerScript:
		controller, err = script.New(ctx)
	default:
		err = fmt.Errorf("unexpected controller type %d", contype)
	}
	return
}
