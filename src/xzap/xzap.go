package xzap

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 日志配置,mode=console输出到标准输出,mode=file走lumberjack滚动文件
type Config struct {
	Mode     string `toml:"mode" mapstructure:"mode" json:"mode"`
	Path     string `toml:"path" mapstructure:"path" json:"path"`
	Level    string `toml:"level" mapstructure:"level" json:"level"`
	MaxSize  int    `toml:"max_size" mapstructure:"max_size" json:"max_size"`
	KeepDays int    `toml:"keep_days" mapstructure:"keep_days" json:"keep_days"`
	Compress bool   `toml:"compress" mapstructure:"compress" json:"compress"`
}

type ctxKey string

// CtxTraceID 链路追踪id在context中的key,中间件写入,日志读取
const CtxTraceID ctxKey = "trace_id"

var global = zap.NewNop()

// SetUp 初始化全局日志器
func SetUp(c Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.Set(c.Level); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var ws zapcore.WriteSyncer
	if c.Mode == "file" && c.Path != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename: c.Path,
			MaxSize:  c.MaxSize,
			MaxAge:   c.KeepDays,
			Compress: c.Compress,
		})
	} else {
		ws = zapcore.AddSync(os.Stdout)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, level)
	logger := zap.New(core, zap.AddCaller())
	global = logger
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// Logger 同时提供结构化和格式化两种打法
type Logger struct {
	l *zap.Logger
}

// WithContext 取出context中的trace id挂到日志字段上
func WithContext(ctx context.Context) *Logger {
	l := global
	if ctx != nil {
		if traceID, ok := ctx.Value(CtxTraceID).(string); ok && traceID != "" {
			l = l.With(zap.String("trace_id", traceID))
		}
	}
	return &Logger{l: l}
}

func (x *Logger) Info(msg string, fields ...zap.Field)  { x.l.Info(msg, fields...) }
func (x *Logger) Warn(msg string, fields ...zap.Field)  { x.l.Warn(msg, fields...) }
func (x *Logger) Error(msg string, fields ...zap.Field) { x.l.Error(msg, fields...) }

func (x *Logger) Infof(format string, args ...interface{})  { x.l.Sugar().Infof(format, args...) }
func (x *Logger) Warnf(format string, args ...interface{})  { x.l.Sugar().Warnf(format, args...) }
func (x *Logger) Errorf(format string, args ...interface{}) { x.l.Sugar().Errorf(format, args...) }
