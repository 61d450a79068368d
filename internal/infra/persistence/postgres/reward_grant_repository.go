package postgres

import (
	"context"
	"time"

	"weev/internal/domain/entity"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/repository"
	"weev/internal/infra/persistence/model"
	"weev/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type rewardGrantRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewRewardGrantRepository is the constructor for rewardGrantRepository.
func NewRewardGrantRepository(db *gorm.DB) repository.RewardGrantRepository {
	return &rewardGrantRepository{
		db: db,
		q:  query.Use(db),
	}
}

func (repo *rewardGrantRepository) CreateBatch(ctx context.Context, grants []*entity.RewardGrant) error {
	if len(grants) == 0 {
		return nil
	}

	grantModels := make([]*model.RewardGrantModel, 0, len(grants))
	for _, grant := range grants {
		grantModels = append(grantModels, fromRewardGrantDomain(grant))
	}

	if err := repo.q.RewardGrantModel.WithContext(ctx).
		Omit(field.AssociationFields).
		Create(grantModels...); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRewardTemplateNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reward grants")
	}

	for i, grantM := range grantModels {
		grants[i].ID = grantM.ID
	}

	return nil
}

// FindByIDForUser locks the grant row on the primary and loads its template.
func (repo *rewardGrantRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.RewardGrant, error) {
	g := repo.q.RewardGrantModel

	grantM, err := g.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Preload(g.Template).
		Where(g.ID.Eq(id), g.UserID.Eq(userID)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardGrantNotFound
		}

		return nil, errors.Wrap(err, "failed to lock reward grant")
	}

	return toRewardGrantDomain(grantM), nil
}

// UpdateState only touches rows still available, so a lost race shows up as zero rows.
func (repo *rewardGrantRepository) UpdateState(ctx context.Context, id uuid.UUID, state entity.GrantState, claimedAt *time.Time) error {
	g := repo.q.RewardGrantModel

	result, err := g.WithContext(ctx).
		Where(g.ID.Eq(id), g.State.Eq(string(entity.GrantStateAvailable))).
		Updates(map[string]any{
			"state":      string(state),
			"claimed_at": claimedAt,
		})

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update reward grant state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGrantStateConflict
	}

	return nil
}

// ExpireDue flips the user's available grants of expired templates in one
// statement and returns their ids. The UPDATE ... RETURNING into a slice stays
// on plain gorm; the template subquery is built with gen.
func (repo *rewardGrantRepository) ExpireDue(ctx context.Context, userID uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	t := repo.q.RewardTemplateModel
	expiredTemplates := t.WithContext(ctx).
		Select(t.ID).
		Where(t.ExpiresAt.IsNotNull(), t.ExpiresAt.Lte(now))

	var expired []model.RewardGrantModel
	if err := repo.db.WithContext(ctx).
		Model(&expired).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("user_id = ? AND state = ? AND template_id IN (?)", userID, string(entity.GrantStateAvailable), expiredTemplates.UnderlyingDB()).
		Update("state", string(entity.GrantStateExpired)).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to expire reward grants")
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, grantM := range expired {
		ids = append(ids, grantM.ID)
	}

	return ids, nil
}

func (repo *rewardGrantRepository) ListByUser(ctx context.Context, userID uuid.UUID, state *entity.GrantState) ([]*entity.RewardGrant, error) {
	g := repo.q.RewardGrantModel

	do := g.WithContext(ctx).
		Preload(g.Template).
		Where(g.UserID.Eq(userID))
	if state != nil {
		do = do.Where(g.State.Eq(string(*state)))
	}

	grantModels, err := do.Order(g.GrantedAt.Desc()).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reward grants")
	}

	grants := make([]*entity.RewardGrant, 0, len(grantModels))
	for _, grantM := range grantModels {
		grants = append(grants, toRewardGrantDomain(grantM))
	}

	return grants, nil
}

func (repo *rewardGrantRepository) CountByUser(ctx context.Context, userID uuid.UUID) (*entity.GrantCounts, error) {
	g := repo.q.RewardGrantModel

	var rows []struct {
		State string
		Total int
	}

	if err := g.WithContext(ctx).
		Select(g.State, g.ID.Count().As("total")).
		Where(g.UserID.Eq(userID)).
		Group(g.State).
		Scan(&rows); err != nil {
		return nil, errors.Wrap(err, "failed to count reward grants")
	}

	counts := &entity.GrantCounts{}
	for _, row := range rows {
		switch entity.GrantState(row.State) {
		case entity.GrantStateAvailable:
			counts.Available = row.Total
		case entity.GrantStateClaimed:
			counts.Claimed = row.Total
		case entity.GrantStateExpired:
			counts.Expired = row.Total
		}
		counts.Total += row.Total
	}

	return counts, nil
}

func toRewardGrantDomain(data *model.RewardGrantModel) *entity.RewardGrant {
	if data == nil {
		return nil
	}

	return &entity.RewardGrant{
		ID:         data.ID,
		UserID:     data.UserID,
		TemplateID: data.TemplateID,
		Template:   toRewardTemplateDomain(data.Template),
		State:      entity.GrantState(data.State),
		GrantedAt:  data.GrantedAt,
		ClaimedAt:  data.ClaimedAt,
	}
}

func fromRewardGrantDomain(data *entity.RewardGrant) *model.RewardGrantModel {
	if data == nil {
		return nil
	}

	return &model.RewardGrantModel{
		ID:         newIDIfNil(data.ID),
		UserID:     data.UserID,
		TemplateID: data.TemplateID,
		State:      string(data.State),
		GrantedAt:  data.GrantedAt,
		ClaimedAt:  data.ClaimedAt,
	}
}
