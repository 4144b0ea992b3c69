package session

import "github.com/sirupsen/logrus"

// Logger receives debug and trace output of provers and verifiers.
// Verifiers can be given their own logger with [WithLogger].
var Logger *logrus.Logger

func init() {
	Logger = logrus.StandardLogger()
}
