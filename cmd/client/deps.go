package main

import (
	"io"
	"os"

	"github.com/sbilibin2017/freelance-tracker/internal/clientconfig"
	"github.com/sbilibin2017/freelance-tracker/internal/shop"
	"github.com/sbilibin2017/freelance-tracker/internal/tui"
)

// deps holds external dependencies of the commands, enabling testability.
type deps struct {
	stdout       io.Writer
	configPath   func() (string, error)
	runDashboard func(api tui.DashboardAPI) error
	runShop      func(checkout *shop.Checkout) error
}

func defaultDeps() *deps {
	return &deps{
		stdout:       os.Stdout,
		configPath:   clientconfig.GetConfigPath,
		runDashboard: tui.RunDashboard,
		runShop:      tui.RunShop,
	}
}
