package global

import (
	"github.com/rs/zerolog"

	"checkboard/app/kv"
	"checkboard/config"
)

var (
	Config *config.Config
	Logger zerolog.Logger
	Store  kv.Store
)
