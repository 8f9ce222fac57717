package verification

import (
	"strings"

	"github.com/explorio/booking-service/internal/domain"
)

// Channel канал верификации контакта
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

// Тексты ошибок для пользователя; формулировка различается по каналам
const (
	MessageIncompleteEmail = "Please enter all 6 digits"
	MessageIncompletePhone = "Wrong OTP Code, please try again"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Gate проверяет коды подтверждения email и телефона
//
// Демо-режим: реальная доставка и сравнение кода не выполняются,
// любые шесть заполненных цифр принимаются безусловно
type Gate struct {
	logger Logger
}

// NewGate создает новый экземпляр verification gate
func NewGate(logger Logger) *Gate {
	return &Gate{logger: logger}
}

// ValidChannel проверяет, что канал поддерживается
func ValidChannel(channel Channel) bool {
	return channel == ChannelEmail || channel == ChannelPhone
}

// SubmitCode проверяет код подтверждения для канала
// Возвращает nil при шести заполненных цифрах, ErrIncompleteCode иначе
func (g *Gate) SubmitCode(channel Channel, code string) error {
	if !ValidChannel(channel) {
		return ErrUnknownChannel
	}

	if !isNumeric(code) {
		g.logger.Warn("SubmitCode: non-numeric code for channel=%s", channel)
		return ErrNonNumericCode
	}

	if len(code) != domain.CodeLength {
		g.logger.Info("SubmitCode: incomplete code for channel=%s (%d of %d digits)",
			channel, len(code), domain.CodeLength)
		return ErrIncompleteCode
	}

	g.logger.Info("SubmitCode: channel=%s verified", channel)
	return nil
}

// IncompleteMessage возвращает текст ошибки неполного кода для канала
func IncompleteMessage(channel Channel) string {
	if channel == ChannelPhone {
		return MessageIncompletePhone
	}
	return MessageIncompleteEmail
}

func isNumeric(code string) bool {
	if code == "" {
		return true // Пустой код неполный, а не нечисловой
	}
	return strings.IndexFunc(code, func(r rune) bool {
		return r < '0' || r > '9'
	}) == -1
}
