// Package log defines the logging interface used across lib-cron and its typed fields.
//
// Adapters (such as the zap package) implement Logger so callers can plug in
// their own backend while the validator keeps a single logging call style.
package log
