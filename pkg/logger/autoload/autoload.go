// Package autoload initializes the process logger from LOG_* environment
// variables as an import side effect.
package autoload

import (
	configx "github.com/Mustafabeshara/Agent-Yahoo-gmail/pkg/config"
	logx "github.com/Mustafabeshara/Agent-Yahoo-gmail/pkg/logger"
)

func init() {
	conf, err := configx.New[logx.Config]("LOG")
	if err != nil {
		logx.Init()
		return
	}
	logx.Init(*conf)
}
