package repository

import (
	"time" // Timestamps

	"github.com/sirupsen/logrus" // Logging library
)

// audit records the outcome of a mutating call
func audit(op, owner string, fields logrus.Fields, err error) {
	entry := logrus.WithFields(logrus.Fields{
		"component": "repository",
		"op":        op,
		"owner":     owner,
		"timestamp": time.Now().Format(time.RFC3339),
	}).WithFields(fields)
	if err != nil {
		entry.WithField("error", err.Error()).Error("Mutation failed")
		return
	}
	entry.Info("Mutation applied")
}
