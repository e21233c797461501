package resterr

type EventErrorCode = string

//nolint:gosec
const (
	EventSystemError                      EventErrorCode = "system-error"
	EventInvalidValue                     EventErrorCode = "invalid-value"
	InvalidCredentialConfigurationID       EventErrorCode = "invalid-credential-configuration-id"
	CredentialTypeNotSupported             EventErrorCode = "credential-type-not-supported"
	CredentialFormatNotSupported           EventErrorCode = "credential-format-not-supported"
	InvalidStateTransition                 EventErrorCode = "invalid-state-transition"
)
