// Package logger 基于zerolog的全局日志初始化
//
// 使用方式：
//
//	logger.Init(cfg.Log)
//	log.Info().Str("addr", addr).Msg("服务启动")
//
// 业务代码直接使用 github.com/rs/zerolog/log 的全局Logger，
// 本包只负责按配置设置级别、格式和输出位置。
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options 日志配置
// 与config.LogConfig字段一一对应，避免pkg依赖internal
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// Init 初始化全局Logger
// 返回的io.Closer用于关闭日志文件（输出到stdout/stderr时为空操作）
func Init(opts Options) (io.Closer, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	out, closer, err := openOutput(opts.Output)
	if err != nil {
		return nil, err
	}

	var w io.Writer = out
	if opts.Format == "console" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "2006/01/02 15:04:05"}
	}

	ctx := zerolog.New(w).With().Timestamp()
	if opts.EnableCaller {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	return closer, nil
}

// New 创建独立Logger（测试或子模块使用）
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := parseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func parseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("无效的日志级别: %s", level)
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nopCloser{}, nil
	case "stderr":
		return os.Stderr, nopCloser{}, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		return f, f, nil
	}
}
