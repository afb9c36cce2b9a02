package errors

// UserError is the interface an error has to comply to to be consumable by an
// external client.
type UserError interface {
	error
	Status() int
	Code() string
	Message() string
	Cause() error
}

// ConcreteUserError is the materialization of the UserError for marshalling
type ConcreteUserError struct {
	ErrStatus  int    `json:"status"`
	ErrCode    string `json:"code"`
	ErrMessage string `json:"message"`
}

// Error implements error for ConcreteUserError so that errors unmarshalled
// from a response can be handled as errors by clients.
func (e ConcreteUserError) Error() string {
	return e.ErrMessage
}

// Build constructs a ConcreteUserError from a UserError.
func Build(err UserError) ConcreteUserError {
	return ConcreteUserError{
		ErrStatus:  err.Status(),
		ErrCode:    err.Code(),
		ErrMessage: err.Message(),
	}
}
