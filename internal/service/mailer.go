package service

import "go.uber.org/zap"

// Mailer delivers outbound account email. Actual delivery is a platform
// concern; the service only decides when to send.
type Mailer interface {
	SendPasswordReset(email, token string) error
}

// LogMailer stands in for the delivery layer and only records that a message
// would have been sent.
type LogMailer struct {
	Logger *zap.SugaredLogger
}

func (m *LogMailer) SendPasswordReset(email, token string) error {
	m.Logger.Infow("password reset requested", "email", email, "token", token)
	return nil
}
