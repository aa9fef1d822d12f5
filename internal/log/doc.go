// Package log provides logging for the discovery engine, built on top
// of the standard slog package.
//
// The engine passes page bodies and extracted link lists between
// pipeline steps, and a debug attribute can easily carry hundreds of
// kilobytes of HTML. The TrimHandler wraps any slog.Handler and
// truncates oversized string attributes before they reach the output,
// so verbose runs stay readable and log files stay small.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("page fetched",
//	    "url", "https://example.com/pricing",
//	    "body", body, // truncated if longer than MaxAttrLen
//	)
package log
