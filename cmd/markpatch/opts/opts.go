package opts

import (
	"github.com/walteh/markpatch/pkg/config"
	"github.com/walteh/markpatch/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	UserLogger *log.UserLogger
}
