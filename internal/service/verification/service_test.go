package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSubmitCode_AcceptsAnyCompleteCode(t *testing.T) {
	gate := NewGate(nopLogger{})

	// Демо-режим: любые шесть цифр принимаются на обоих каналах
	codes := []string{"123456", "000000", "999999"}
	for _, code := range codes {
		assert.NoError(t, gate.SubmitCode(ChannelEmail, code))
		assert.NoError(t, gate.SubmitCode(ChannelPhone, code))
	}
}

func TestSubmitCode_IncompleteCode(t *testing.T) {
	gate := NewGate(nopLogger{})

	tests := []string{"", "1", "12345", "1234567"}
	for _, code := range tests {
		assert.ErrorIs(t, gate.SubmitCode(ChannelEmail, code), ErrIncompleteCode)
		assert.ErrorIs(t, gate.SubmitCode(ChannelPhone, code), ErrIncompleteCode)
	}
}

func TestSubmitCode_NonNumericCode(t *testing.T) {
	gate := NewGate(nopLogger{})

	tests := []string{"12345a", "abcdef", "12 456", "12-456"}
	for _, code := range tests {
		assert.ErrorIs(t, gate.SubmitCode(ChannelEmail, code), ErrNonNumericCode)
	}
}

func TestSubmitCode_UnknownChannel(t *testing.T) {
	gate := NewGate(nopLogger{})

	assert.ErrorIs(t, gate.SubmitCode("sms", "123456"), ErrUnknownChannel)
	assert.ErrorIs(t, gate.SubmitCode("", "123456"), ErrUnknownChannel)
}

func TestValidChannel(t *testing.T) {
	assert.True(t, ValidChannel(ChannelEmail))
	assert.True(t, ValidChannel(ChannelPhone))
	assert.False(t, ValidChannel("sms"))
}

func TestIncompleteMessage_ExactWording(t *testing.T) {
	assert.Equal(t, "Please enter all 6 digits", IncompleteMessage(ChannelEmail))
	assert.Equal(t, "Wrong OTP Code, please try again", IncompleteMessage(ChannelPhone))
}
