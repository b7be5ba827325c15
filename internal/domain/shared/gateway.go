package shared

import "context"

// ProcedureGateway invokes named server-side operations. All business-rule
// enforcement (stock non-negativity, redemption exclusivity, invoice
// uniqueness) lives inside the invoked operation; this interface is a dumb
// pipe carrying positional scalar arguments.
//
// Constraint violations raised by the operation surface as a DomainError with
// code PERSISTENCE_CONFLICT carrying the server-provided message.
type ProcedureGateway interface {
	// Invoke runs an operation that returns no rows, reporting rows affected.
	Invoke(ctx context.Context, operation string, args ...any) (int64, error)

	// Query runs a table-valued operation and scans the result set into dest,
	// which must be a pointer to a slice.
	Query(ctx context.Context, operation string, dest any, args ...any) error
}
