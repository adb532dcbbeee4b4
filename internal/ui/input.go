package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/estetica-admin/internal/apperr"
)

// readLine imprime o prompt e lê uma linha já aparada. ok=false em EOF.
func (r *Router) readLine(prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

// promptRequired insiste até vir algo não vazio. O core não valida entrada;
// segurar o comando até os campos obrigatórios existirem é papel daqui.
func (r *Router) promptRequired(label string) (string, error) {
	v, ok := r.readLine(label + ": ")
	if !ok {
		return "", apperr.ErrBusiness(apperr.CodeInputClosed)
	}
	if v == "" {
		return "", apperr.ErrBusiness(apperr.CodeMissingField)
	}
	return v, nil
}

// promptOptional devolve def quando a linha vem vazia.
func (r *Router) promptOptional(label, def string) string {
	v, ok := r.readLine(label + ": ")
	if !ok || v == "" {
		return def
	}
	return v
}

func (r *Router) promptInt(label string) (int, error) {
	v, err := r.promptRequired(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.ErrBusiness(apperr.CodeInvalidNumber)
	}
	return n, nil
}

// promptIndex lê um número 1..n e devolve o índice 0-based.
func (r *Router) promptIndex(label string, n int) (int, error) {
	i, err := r.promptInt(label)
	if err != nil {
		return 0, err
	}
	if i < 1 || i > n {
		return 0, apperr.ErrBusiness(apperr.CodeOutOfRange)
	}
	return i - 1, nil
}

func (r *Router) fail(err error) {
	if apperr.IsBusiness(err, apperr.CodeInputClosed) {
		return
	}
	fmt.Fprintf(r.out, "✗ %v\n", err)
}
