package apperr

import (
	"fmt"
	"testing"
)

func TestIsBusinessMatchesCode(t *testing.T) {
	err := ErrBusiness(CodeMissingField)

	if !IsBusiness(err, CodeMissingField) {
		t.Error("code not matched")
	}
	if IsBusiness(err, CodeOutOfRange) {
		t.Error("matched the wrong code")
	}
}

func TestIsBusinessUnwrapsChain(t *testing.T) {
	err := fmt.Errorf("leyendo formulario: %w", ErrBusiness(CodeInvalidNumber))

	if !IsBusiness(err, CodeInvalidNumber) {
		t.Error("wrapped code not matched")
	}
	if IsBusiness(fmt.Errorf("sin causa"), CodeInvalidNumber) {
		t.Error("matched an error without a business code")
	}
}
