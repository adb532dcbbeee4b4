// Package apperr carrega os erros de regra de negócio que a camada de
// apresentação trata por código, sem depender da mensagem.
package apperr

import "errors"

// Códigos emitidos pelos prompts da interface.
const (
	CodeInputClosed   = "input_closed"
	CodeMissingField  = "missing_field"
	CodeInvalidNumber = "invalid_number"
	CodeOutOfRange    = "out_of_range"
)

// BusinessError identifica a falha por um código estável; a view decide
// como (e se) apresentar cada código.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness informa se err (ou algo na sua cadeia) carrega o código dado.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
