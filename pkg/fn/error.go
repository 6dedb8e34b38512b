package fn

const (
	DefaultSuccessMessage = "Operation succeeded"
	DefaultFailureMessage = "Operation failed"
)

// Error is an immutable failure descriptor. A logical error carries only a
// message; a fault-wrapping error additionally holds the originating fault
// caught at a boundary.
type Error struct {
	message string
	fault   error
}

// Faulter is the capability combinators use to detect fault-wrapping errors
// without depending on the concrete Error type.
type Faulter interface {
	Fault() error
}

func FromMessage(msg string) Error {
	if msg == "" {
		msg = DefaultFailureMessage
	}
	return Error{message: msg}
}

func FromFault(fault error) Error {
	if IsNil(fault) {
		return Error{message: DefaultFailureMessage}
	}
	return Error{message: fault.Error(), fault: fault}
}

// Wrap joins the caller message with the fault's own message.
func Wrap(msg string, fault error) Error {
	if IsNil(fault) {
		return FromMessage(msg)
	}
	if msg == "" {
		msg = DefaultFailureMessage
	}
	return Error{message: msg + ": " + fault.Error(), fault: fault}
}

func (e Error) Error() string {
	return e.message
}

func (e Error) Message() string {
	return e.message
}

// Fault returns the wrapped originating fault, or nil for a logical error.
func (e Error) Fault() error {
	return e.fault
}

func (e Error) Unwrap() error {
	return e.fault
}

func (e Error) HasFault() bool {
	return e.fault != nil
}

// FaultOf extracts the originating fault from any error implementing Faulter.
func FaultOf(err error) error {
	if f, ok := err.(Faulter); ok {
		return f.Fault()
	}
	return nil
}
