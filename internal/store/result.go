package store

// UpdateResult distingue uma atualização aplicada de um no-op por id ausente.
// O id ausente é política permissiva, não erro (ver usecases).
type UpdateResult int

const (
	Applied UpdateResult = iota
	NotFoundNoop
)

func (r UpdateResult) String() string {
	switch r {
	case Applied:
		return "applied"
	case NotFoundNoop:
		return "not_found_noop"
	}
	return "unknown"
}
