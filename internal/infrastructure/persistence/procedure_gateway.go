package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/awerp/backend/internal/domain/benefits"
	"github.com/awerp/backend/internal/domain/inventory"
	"github.com/awerp/backend/internal/domain/invoicing"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// raiseException is the SQLSTATE produced by RAISE EXCEPTION in a function
// body, the channel the stored operations use to report rule violations.
const raiseException = "P0001"

// registeredOperations whitelists every server-side operation the gateway may
// call, keyed by operation name with the expected argument count. Names never
// come from request input, but the whitelist keeps a stray caller from
// interpolating arbitrary SQL through the gateway.
var registeredOperations = map[string]int{
	benefits.OpAssign:            3,
	benefits.OpRedeem:            2,
	benefits.OpUnpopularProducts: 0,
	inventory.OpUpdateQuantity:   3,
	inventory.OpReplenish:        1,
	invoicing.OpGenerateInvoice:  1,
}

// GormProcedureGateway invokes database-resident operations through the GORM
// connection. Business rules enforced inside the operations surface as
// PERSISTENCE_CONFLICT domain errors carrying the database message.
type GormProcedureGateway struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormProcedureGateway creates a new GormProcedureGateway
func NewGormProcedureGateway(db *gorm.DB, logger *zap.Logger) *GormProcedureGateway {
	return &GormProcedureGateway{db: db, logger: logger.Named("procgw")}
}

// Invoke calls a scalar operation and returns the row count it reports.
func (g *GormProcedureGateway) Invoke(ctx context.Context, operation string, args ...any) (int64, error) {
	if err := g.check(operation, len(args)); err != nil {
		return 0, err
	}

	var affected int64
	sql := fmt.Sprintf("SELECT %s(%s)", operation, placeholders(len(args)))
	if err := g.db.WithContext(ctx).Raw(sql, args...).Scan(&affected).Error; err != nil {
		return 0, g.translate(operation, err)
	}

	g.logger.Debug("operation invoked",
		zap.String("operation", operation),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

// Query calls a table-valued operation and scans its rows into dest.
func (g *GormProcedureGateway) Query(ctx context.Context, operation string, dest any, args ...any) error {
	if err := g.check(operation, len(args)); err != nil {
		return err
	}

	sql := fmt.Sprintf("SELECT * FROM %s(%s)", operation, placeholders(len(args)))
	if err := g.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error; err != nil {
		return g.translate(operation, err)
	}
	return nil
}

func (g *GormProcedureGateway) check(operation string, argc int) error {
	want, ok := registeredOperations[operation]
	if !ok {
		return fmt.Errorf("unregistered operation %q", operation)
	}
	if argc != want {
		return fmt.Errorf("operation %q expects %d arguments, got %d", operation, want, argc)
	}
	return nil
}

// translate maps integrity violations and raised exceptions to domain
// errors; everything else passes through as an infrastructure failure.
func (g *GormProcedureGateway) translate(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "23") || pgErr.Code == raiseException {
			g.logger.Warn("operation rejected",
				zap.String("operation", operation),
				zap.String("sqlstate", pgErr.Code),
				zap.String("message", pgErr.Message),
			)
			return shared.NewPersistenceConflict(pgErr.Message)
		}
	}
	return fmt.Errorf("operation %s failed: %w", operation, err)
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "?"
	}
	return strings.Join(parts, ", ")
}

// Ensure GormProcedureGateway implements ProcedureGateway
var _ shared.ProcedureGateway = (*GormProcedureGateway)(nil)
