package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNotConfigured     = errors.New("extraction is not configured")
)

const (
	MsgRequiredField = "required field missing"
	MsgEmptyGrid     = "at least one size quantity required"
	MsgNonPositive   = "amount must be positive"
	MsgInvalidDate   = "invalid date"
	MsgUnknownSize   = "unknown size label"
	MsgUnknownStatus = "unknown status"
	MsgInvalidPhoto  = "invalid photo"
)

// ValidationError is raised before any I/O; nothing has been written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: MsgRequiredField}
}

func EmptyGrid() *ValidationError {
	return &ValidationError{Field: "tamanhos", Message: MsgEmptyGrid}
}

func NonPositive(field string) *ValidationError {
	return &ValidationError{Field: field, Message: MsgNonPositive}
}

func InvalidDate(field string) *ValidationError {
	return &ValidationError{Field: field, Message: MsgInvalidDate}
}

func InvalidPhoto() *ValidationError {
	return &ValidationError{Field: "foto", Message: MsgInvalidPhoto}
}

func UnknownSize(label string) *ValidationError {
	return &ValidationError{Field: "tamanhos." + label, Message: MsgUnknownSize}
}

// PersistenceError wraps a failed store or blob operation. Offline is set when
// the connectivity probe could not reach the backend at failure time.
type PersistenceError struct {
	Op      string
	Offline bool
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Offline {
		return fmt.Sprintf("%s (offline): %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ExtractionError is non-fatal: the form stays usable for manual entry.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return "extraction failed: " + e.Reason
	}
	return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// UserMessage converts an error into the text shown next to the failed action.
func UserMessage(err error) string {
	var validationErr *ValidationError
	var persistenceErr *PersistenceError
	var extractionErr *ExtractionError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		switch validationErr.Message {
		case MsgEmptyGrid:
			return "Informe a quantidade de pelo menos um tamanho."
		case MsgNonPositive:
			return "O valor deve ser maior que zero."
		case MsgInvalidDate:
			return "Data inválida."
		case MsgUnknownSize:
			return "Tamanho não reconhecido."
		case MsgUnknownStatus:
			return "Status desconhecido."
		case MsgInvalidPhoto:
			return "Foto inválida. Envie uma imagem de até 10 MB."
		default:
			return "Por favor, preencha todos os campos obrigatórios."
		}
	case errors.Is(err, ErrInvalidTransition):
		return "Mudança de status não permitida."
	case errors.Is(err, ErrNotFound):
		return "Registro não encontrado."
	case errors.As(err, &persistenceErr):
		if persistenceErr.Offline {
			return "Sem conexão com a internet. Verifique sua rede e tente novamente."
		}
		return "Erro ao salvar. Tente novamente."
	case errors.Is(err, ErrNotConfigured):
		return "Chave de API do assistente de voz não configurada."
	case errors.As(err, &extractionErr):
		return "Erro ao processar o áudio com IA."
	default:
		return "Erro inesperado. Tente novamente."
	}
}
