// Package logger provides structured logging for dryer using zerolog.
//
// It supports JSON and console output, level configuration from config
// or environment, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.WithComponent("pipeline")
//	log.Info("stage completed", logger.Fields("plugin", "summarize"))
package logger
