package apierrors

import (
	"fmt"
	"net/http"

	"taskboard/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// Kind classifies a failure; it decides the HTTP status at the boundary.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is the typed failure the service layer returns instead of panicking
// or relying on sentinel strings. MsgKey is a translator message id.
type Error struct {
	Kind   Kind
	MsgKey string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.MsgKey)
}

func Validation(msgKey string) *Error   { return &Error{Kind: KindValidation, MsgKey: msgKey} }
func Unauthorized(msgKey string) *Error { return &Error{Kind: KindUnauthorized, MsgKey: msgKey} }
func Forbidden(msgKey string) *Error    { return &Error{Kind: KindForbidden, MsgKey: msgKey} }
func NotFound(msgKey string) *Error     { return &Error{Kind: KindNotFound, MsgKey: msgKey} }
func Conflict(msgKey string) *Error     { return &Error{Kind: KindConflict, MsgKey: msgKey} }
func Internal(msgKey string) *Error     { return &Error{Kind: KindInternal, MsgKey: msgKey} }

// FieldError pinpoints one invalid request field in a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JsonErr is the error response envelope.
type JsonErr struct {
	Success bool         `json:"success"`
	Message string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return e.Message
}

// CreateError builds the envelope with a translated message.
func CreateError(msgKey string, lang string) JsonErr {
	return JsonErr{Success: false, Message: GetTransErrorMsg(msgKey, lang)}
}

// CreateValidationError is CreateError plus field-level details.
func CreateValidationError(lang string, details []FieldError) JsonErr {
	err := CreateError(MsgValidationFailed, lang)
	err.Details = details
	return err
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
