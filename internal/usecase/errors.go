package usecase

// DomainError: el request es inválido o pide algo que no existe.
// La frontera HTTP lo mapea a 400; el mensaje es apto para el usuario.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError: falla interna inesperada. La frontera HTTP lo mapea
// a 500 con mensaje genérico; el detalle solo va al log.
type TechnicalError struct {
	Code    string
	Message string
	Cause   error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Cause
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
