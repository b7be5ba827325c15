package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/awerp/backend/internal/domain/inventory"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormInventoryRepository_FindByKey(t *testing.T) {
	t.Run("finds row by composite key", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(gormDB)

		rows := sqlmock.NewRows([]string{"product_id", "location_id", "shelf", "bin", "quantity"}).
			AddRow(707, int16(1), "A", int16(5), int16(388))

		mock.ExpectQuery(`SELECT \* FROM "production"\."product_inventory" WHERE product_id = \$1 AND location_id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(707, int16(1), 1).
			WillReturnRows(rows)

		row, err := repo.FindByKey(context.Background(), 707, 1)

		assert.NoError(t, err)
		assert.Equal(t, int16(388), row.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "production"\."product_inventory" WHERE product_id = \$1 AND location_id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(707, int16(99), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		row, err := repo.FindByKey(context.Background(), 707, 99)

		assert.Nil(t, row)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryRepository_Create(t *testing.T) {
	t.Run("maps duplicate key to ErrAlreadyExists", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(gormDB)

		mock.ExpectExec(`INSERT INTO "production"\."product_inventory"`).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := repo.Create(context.Background(), &inventory.ProductInventory{ProductID: 707, LocationID: 1})

		assert.Equal(t, shared.ErrAlreadyExists, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
