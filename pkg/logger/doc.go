// Package logger builds *slog.Logger instances for phonekit binaries and
// provides attribute helpers that keep key names consistent across packages.
//
// A logger is created with New and a set of Option functions selecting the
// output format (text or json), minimum level, destination and static
// attributes. WithDevelopment and WithProduction bundle sensible defaults.
//
//	log := logger.New(logger.WithDevelopment("phone-cli"))
//	log.Debug("candidate rejected",
//	    logger.Phone(raw),
//	    logger.Country("US"),
//	    logger.Error(err),
//	)
//
// Phone numbers are personal data: the Phone helper only keeps the last four
// digits. Error and Errors return an empty attribute for nil errors, so they
// can be passed unconditionally.
package logger
