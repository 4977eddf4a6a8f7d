// Package cron validates cron schedule expressions against a configurable grammar.
//
// It accepts the classic 5-field layout (minute hour day-of-month month
// day-of-week) and, when seconds are enabled, a 6-field layout with a leading
// seconds field. Lists, ranges, steps and wildcards are always understood.
// Month and weekday names, blank days (?), Sunday as 7, hashed values (H),
// last-day markers (L) and nearest-weekday markers (W) are opt-in.
//
// With names enabled, the month and day-of-week fields are lowercased and each
// run of three letters naming a month or weekday is replaced by its number, so
// "jan-mar" reads as "1-3" and "janfeb" as "12". H and L are then unavailable
// in those two fields.
//
// Validation is a pure function of the expression and the Options. Nothing is
// scheduled and no fire times are computed.
//
//	ok := cron.IsValid("0 12 * * mon-fri", cron.Options{Alias: true})
package cron
