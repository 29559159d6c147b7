package mir

import "github.com/sirupsen/logrus"

// newDiscardLogger returns a logger that drops everything, used as the
// Converter's default so callers who never call WithLogger still get a
// valid, silent logger. Grounded on auth/audit.go's
// `log *logrus.Entry` field and `NewAuditLog(l *logrus.Logger)` pattern in
// the teacher.
func newDiscardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return logrus.NewEntry(l)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
