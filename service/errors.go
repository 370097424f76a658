package service

import "errors"

// ErrNotFound indica que o identificador não resolve para nenhuma linha.
var ErrNotFound = errors.New("registro não encontrado")

// ValidationError indica que um campo enviado pelo cliente viola uma
// regra declarada. O handler devolve a mensagem como corpo do 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidArgument(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
