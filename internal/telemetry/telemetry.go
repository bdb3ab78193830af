// Package telemetry wraps logrus with structured fields, one log call per
// notable event, so the transaction handler can trace dispatch without
// handlers themselves depending on a logging library.
package telemetry

import "github.com/sirupsen/logrus"

// Logger is the package-wide structured logger. Tests and the demo binary
// may reassign it (e.g. to silence output or redirect to a buffer).
var Logger = logrus.StandardLogger()

// ApplyStart logs that a transaction is about to be dispatched.
func ApplyStart(requestID, action, signer string, timestamp uint64) {
	Logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"action":     action,
		"signer":     truncate(signer, 12),
		"timestamp":  timestamp,
	}).Debug("dispatching supply_chain transaction")
}

// ApplyRejected logs that a transaction was rejected by a handler.
func ApplyRejected(requestID, action string, err error) {
	Logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"action":     action,
		"error":      err.Error(),
	}).Warn("supply_chain transaction rejected")
}

// ApplyOK logs that a transaction committed successfully.
func ApplyOK(requestID, action string) {
	Logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"action":     action,
	}).Debug("supply_chain transaction applied")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
