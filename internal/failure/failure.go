package failure

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

const (
	// DefaultTitle is shown when an error carries no display message.
	DefaultTitle = "An unexpected error has occurred."

	missingSettingTitle = "A required setting is missing"
	notConfiguredTitle  = "This component has not been configured"
)

// Error is an error meant to be shown to users. It may wrap an underlying cause.
type Error struct {
	DisplayMessage string

	additional string
	cause      error
}

// New returns a display error with the given message.
func New(message string) *Error {
	return &Error{DisplayMessage: message}
}

// Wrap returns a display error wrapping cause. The cause's text follows the
// message in Error.
func Wrap(cause error, message, additional string) *Error {
	return &Error{
		DisplayMessage: message,
		additional:     additional,
		cause:          cause,
	}
}

func (e *Error) Error() string {
	switch {
	case e.DisplayMessage != "" && e.cause != nil:
		return e.DisplayMessage + ": " + e.cause.Error()
	case e.DisplayMessage != "":
		return e.DisplayMessage
	case e.cause != nil:
		return e.cause.Error()
	default:
		return DefaultTitle
	}
}

func (e *Error) Unwrap() error { return e.cause }

// AdditionalInformation returns the HTML-escaped extra details.
func (e *Error) AdditionalInformation() string {
	return html.EscapeString(e.additional)
}

// MissingSetting reports a setting that must be configured.
func MissingSetting(setting string) *Error {
	return New(fmt.Sprintf("%s: %s", missingSettingTitle, setting))
}

// NotConfigured reports a component, identified by id, that was never set up.
// message is optional.
func NotConfigured(id, message string) *Error {
	msg := notConfiguredTitle
	if message != "" {
		msg += ": " + message
	}
	if id != "" {
		msg = fmt.Sprintf("%s (id %s)", msg, id)
	}
	return New(msg)
}

// Root returns the innermost error of the chain.
func Root(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
