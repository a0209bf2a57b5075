package logwindow

import "strings"

// Kind identifies the process that produced a log.
type Kind int

const (
	KindExecutor Kind = iota + 1
	KindDriver
)

func (k Kind) String() string {
	switch k {
	case KindExecutor:
		return "executor"
	case KindDriver:
		return "driver"
	default:
		return "unknown"
	}
}

// Ref selects the owner of a log. It is either an ExecutorRef or a DriverRef;
// build one with NewRef so the identifier set is validated once at the edge.
type Ref interface {
	Kind() Kind
	// segments returns the directory components under the log root.
	segments() []string
}

// ExecutorRef names an executor of an application.
type ExecutorRef struct {
	AppID      string
	ExecutorID string
}

func (ExecutorRef) Kind() Kind { return KindExecutor }

func (r ExecutorRef) segments() []string { return []string{r.AppID, r.ExecutorID} }

// DriverRef names a supervised driver process.
type DriverRef struct {
	DriverID string
}

func (DriverRef) Kind() Kind { return KindDriver }

func (r DriverRef) segments() []string { return []string{r.DriverID} }

// NewRef picks the log owner from the optional identifiers of a request.
// Exactly one shape must be present: appID and executorID together, or
// driverID alone. Anything else is rejected rather than guessed.
func NewRef(appID, executorID, driverID string) (Ref, error) {
	appID = strings.TrimSpace(appID)
	executorID = strings.TrimSpace(executorID)
	driverID = strings.TrimSpace(driverID)

	hasExecutor := appID != "" && executorID != ""
	hasDriver := driverID != ""

	switch {
	case hasDriver && appID == "" && executorID == "":
		return DriverRef{DriverID: driverID}, nil
	case hasExecutor && !hasDriver:
		return ExecutorRef{AppID: appID, ExecutorID: executorID}, nil
	default:
		return nil, wrap(ErrInvalidRequest, "", errMissingIdentifiers, nil)
	}
}
