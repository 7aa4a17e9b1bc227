package main

import (
	"os"
	"path/filepath"

	"github.com/project/library/config"
	"github.com/project/library/internal/app"
	log "github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.NewConfig()

	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	var logger *zap.Logger

	logger, err = NewLogger(cfg.Log.File)

	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}
	defer func() { _ = logger.Sync() }()

	app.Run(logger, cfg)
}

// NewLogger writes JSON lines to stdout, stderr or the given file.
func NewLogger(target string) (*zap.Logger, error) {
	var writeSyncer zapcore.WriteSyncer

	switch target {
	case "", "stdout":
		writeSyncer = zapcore.Lock(os.Stdout)
	case "stderr":
		writeSyncer = zapcore.Lock(os.Stderr)
	default:
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return nil, err
		}

		file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		writeSyncer = zapcore.AddSync(file)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writeSyncer, zap.InfoLevel)

	return zap.New(core), nil
}
