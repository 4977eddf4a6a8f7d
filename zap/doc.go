// Package zap adapts go.uber.org/zap to the lib-cron log.Logger interface.
//
// Callers that already run zap can hand a *Logger to cron.WithLogger and get
// rejected-expression diagnostics correlated with their active trace.
package zap
