package postgres

import (
	"context"
	"testing"
	"time"

	"weev/internal/domain/entity"
	"weev/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_FindByIDForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "active", "points", "level", "created_at", "updated_at"}).
		AddRow(userID.String(), "ana@example.com", "hash", "Ana", "consumer", true, 120, 2, now, now)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1 .*FOR UPDATE`).WillReturnRows(rows)

	user, err := repo.FindByIDForUpdate(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, 120, user.Points)
	assert.Equal(t, 2, user.Level)
	assert.Equal(t, entity.RoleConsumer, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePoints(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	t.Run("writes points and level", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "users" SET "points"=\$1,"level"=\$2,"updated_at"=\$3.* WHERE "users"\."id" = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdatePoints(context.Background(), uuid.New(), 110, 2))
	})

	t.Run("missing user", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePoints(context.Background(), uuid.New(), 10, 1)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &entity.User{Email: "Ana@Example.com", Name: "Ana", Role: entity.RoleConsumer, Active: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivationRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivationRepository(db)

	t.Run("assigns an id", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO "activations"`).WillReturnResult(sqlmock.NewResult(0, 1))

		activation := &entity.Activation{UserID: uuid.New(), ProductID: uuid.New(), PointsAwarded: entity.BasePoints, ActivatedAt: time.Now()}
		require.NoError(t, repo.Create(context.Background(), activation))
		assert.NotEqual(t, uuid.Nil, activation.ID)
	})

	t.Run("unique violation maps to duplicate activation", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO "activations"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_activations_user_product"})

		err := repo.Create(context.Background(), &entity.Activation{UserID: uuid.New(), ProductID: uuid.New(), ActivatedAt: time.Now()})
		assert.ErrorIs(t, err, repository.ErrDuplicateActivation)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivationRepository_CountByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivationRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "activations" WHERE "activations"\."user_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindActiveByCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	productID := uuid.New()
	brandID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "brand_id", "name", "activation_code", "active", "created_at", "updated_at"}).
		AddRow(productID.String(), brandID.String(), "Shoe", "WEEV-ABC", true, now, now)
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."activation_code" = \$1 AND "products"\."active" = \$2`).WillReturnRows(rows)

	product, err := repo.FindActiveByCode(context.Background(), "WEEV-ABC")
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
	assert.Equal(t, brandID, product.BrandID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Categories(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT DISTINCT "products"\."category" FROM "products" WHERE "products"\."active" = \$1 AND "products"\."category" IS NOT NULL AND "products"\."category" <> \$2 ORDER BY "products"\."category"`).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("calzado").AddRow("ropa"))

	categories, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"calzado", "ropa"}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Update_MissingProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`UPDATE "products" SET .*"name"=.* WHERE "products"\."id" = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Product{ID: uuid.New(), BrandID: uuid.New(), Name: "Shoe"})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRewardTemplateRepository_FindByIDAndBrand(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRewardTemplateRepository(db)
	templateID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	t.Run("joins the owning product", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "product_id", "name", "type", "value", "active", "created_at", "updated_at"}).
			AddRow(templateID.String(), productID.String(), "Bonus", "points", "25 puntos", true, now, now)
		mock.ExpectQuery(`SELECT "reward_templates"\.\* FROM "reward_templates" INNER JOIN "products" ON "products"\."id" = "reward_templates"\."product_id" WHERE "reward_templates"\."id" = \$1 AND "products"\."brand_id" = \$2`).
			WillReturnRows(rows)

		template, err := repo.FindByIDAndBrand(context.Background(), templateID, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, templateID, template.ID)
		assert.Equal(t, productID, template.ProductID)
		assert.Equal(t, entity.RewardTypePoints, template.Type)
	})

	t.Run("other brand is not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM "reward_templates" INNER JOIN "products"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByIDAndBrand(context.Background(), templateID, uuid.New())
		assert.ErrorIs(t, err, repository.ErrRewardTemplateNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create_DuplicateCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`INSERT INTO "products"`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &entity.Product{BrandID: uuid.New(), Name: "Shoe", ActivationCode: "weev-abc", Active: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateActivationCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRewardGrantRepository_CreateBatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRewardGrantRepository(db)
	now := time.Now()

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repo.CreateBatch(context.Background(), nil))
	})

	t.Run("single insert for all grants", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO "reward_grants"`).WillReturnResult(sqlmock.NewResult(0, 2))

		userID := uuid.New()
		grants := []*entity.RewardGrant{
			entity.NewRewardGrant(userID, &entity.RewardTemplate{ID: uuid.New()}, now),
			entity.NewRewardGrant(userID, &entity.RewardTemplate{ID: uuid.New()}, now),
		}
		require.NoError(t, repo.CreateBatch(context.Background(), grants))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRewardGrantRepository_UpdateState_ConflictWhenNotAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRewardGrantRepository(db)
	now := time.Now()

	mock.ExpectExec(`UPDATE "reward_grants" SET .* WHERE "reward_grants"\."id" = \$\d+ AND "reward_grants"\."state" = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateState(context.Background(), uuid.New(), entity.GrantStateClaimed, &now)
	assert.ErrorIs(t, err, repository.ErrGrantStateConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRewardGrantRepository_ExpireDue_ReturnsIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRewardGrantRepository(db)
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(`UPDATE "reward_grants" SET "state"=.*template_id IN \(SELECT "reward_templates"\."id" FROM "reward_templates" WHERE "reward_templates"\."expires_at" IS NOT NULL AND "reward_templates"\."expires_at" <= .*RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(first.String()).AddRow(second.String()))

	ids, err := repo.ExpireDue(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first, second}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRewardGrantRepository_ListByUser_PreloadsTemplates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRewardGrantRepository(db)
	userID, grantID, templateID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()
	state := entity.GrantStateAvailable

	mock.ExpectQuery(`SELECT \* FROM "reward_grants" WHERE "reward_grants"\."user_id" = \$1 AND "reward_grants"\."state" = \$2 ORDER BY "reward_grants"\."granted_at" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "template_id", "state", "granted_at", "claimed_at"}).
			AddRow(grantID.String(), userID.String(), templateID.String(), "available", now, nil))
	mock.ExpectQuery(`SELECT \* FROM "reward_templates" WHERE "reward_templates"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "value", "active"}).
			AddRow(templateID.String(), "Bonus", "discount", "15%", true))

	grants, err := repo.ListByUser(context.Background(), userID, &state)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, grantID, grants[0].ID)
	assert.Equal(t, entity.GrantStateAvailable, grants[0].State)
	require.NotNil(t, grants[0].Template)
	assert.Equal(t, "Bonus", grants[0].Template.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRewardGrantRepository_CountByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRewardGrantRepository(db)

	mock.ExpectQuery(`SELECT "reward_grants"\."state",COUNT\("reward_grants"\."id"\) AS "total" FROM "reward_grants" WHERE "reward_grants"\."user_id" = \$1 GROUP BY "reward_grants"\."state"`).
		WillReturnRows(sqlmock.NewRows([]string{"state", "total"}).
			AddRow("available", 3).
			AddRow("claimed", 2).
			AddRow("expired", 1))

	counts, err := repo.CountByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, &entity.GrantCounts{Total: 6, Available: 3, Claimed: 2, Expired: 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Execute(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
			return f.UserRepo().UpdatePoints(context.Background(), uuid.New(), 10, 1)
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the callback error", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			return repository.ErrDuplicateActivation
		})
		assert.ErrorIs(t, err, repository.ErrDuplicateActivation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
