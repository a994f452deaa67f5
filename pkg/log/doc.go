// Package log provides named loggers for the folio services.
//
// Every package that talks to the outside world (the upstream search API,
// browsers over WebSocket, the HTTP front end) logs through a logger obtained
// with ForService, so each line carries a grep-friendly `[name>]` marker:
//
//	[searchapi>] GET /search/?q=dune failed: status 502
//
// Key Features
//
//   - Named loggers via ForService(name), memoized per name
//   - Level helpers: Infof, Warnf, Errorf, Debugf
//   - Debug output enabled globally (SetGlobalDebug, the --debug flag) or per
//     service (EnableDebugFor, ConfigureDebug from the debug_services setting)
//   - A single output writer (SetOutput) shared by existing and future loggers
//
// Basic Usage
//
//	logger := log.ForService("page")
//	logger.Infof("loaded %d categories", n)
//	logger.Debugf("suggest %q", text) // only with debug enabled
//
// Testing
//
// Tests redirect output by calling SetOutput with a bytes.Buffer and assert on
// its contents.
//
// The package name collides with the standard library log package; alias one
// of them when both are needed.
package log
