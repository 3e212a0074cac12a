// Package timezone pins the application to the hotel's local zone.
//
// Usage:
//
//	now := timezone.Now()       // wall clock in hotel time
//	today := timezone.Today()   // hotel calendar date, used as the default status window
//	s := timezone.Format(t, constant.DateTimeFormat)
//
// The zone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use IANA names such as
// "Asia/Jakarta" or "UTC".
package timezone
