package impl

import (
	"context"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"weev/internal/domain/entity"
	"weev/internal/domain/repository"
	"weev/internal/errors"

	"github.com/google/uuid"
)

// memStore is an in-memory, transactional stand-in for the Postgres repositories.
// Transactions are serialized and roll back to a snapshot on error or panic, which
// mirrors the row locks and all-or-nothing commits the workflows rely on.
type memStore struct {
	mu sync.Mutex

	users       map[uuid.UUID]entity.User
	brands      map[uuid.UUID]entity.Brand
	products    map[uuid.UUID]entity.Product
	templates   map[uuid.UUID]entity.RewardTemplate
	activations []entity.Activation
	grants      map[uuid.UUID]entity.RewardGrant

	// blindPrecheck makes FindByUserAndProduct always miss, so only the unique
	// (user, product) check in Create can reject a duplicate.
	blindPrecheck bool
	// failCreateBatch, when set, is returned by RewardGrantRepository.CreateBatch.
	failCreateBatch error
	// onActivationCreated runs inside the transaction right after an activation insert.
	onActivationCreated func()
}

type memSnapshot struct {
	users       map[uuid.UUID]entity.User
	brands      map[uuid.UUID]entity.Brand
	products    map[uuid.UUID]entity.Product
	templates   map[uuid.UUID]entity.RewardTemplate
	activations []entity.Activation
	grants      map[uuid.UUID]entity.RewardGrant
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[uuid.UUID]entity.User{},
		brands:    map[uuid.UUID]entity.Brand{},
		products:  map[uuid.UUID]entity.Product{},
		templates: map[uuid.UUID]entity.RewardTemplate{},
		grants:    map[uuid.UUID]entity.RewardGrant{},
	}
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		users:       maps.Clone(s.users),
		brands:      maps.Clone(s.brands),
		products:    maps.Clone(s.products),
		templates:   maps.Clone(s.templates),
		activations: slices.Clone(s.activations),
		grants:      maps.Clone(s.grants),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.users = snap.users
	s.brands = snap.brands
	s.products = snap.products
	s.templates = snap.templates
	s.activations = snap.activations
	s.grants = snap.grants
}

// Execute implements repository.TransactionManager.
func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
		if err != nil {
			s.restore(snap)
		}
	}()

	return fn(&memFactory{tx: &memTx{store: s, inTx: true}})
}

// repos returns repositories usable outside a transaction.
func (s *memStore) repos() *memFactory {
	return &memFactory{tx: &memTx{store: s}}
}

// --- seeding helpers ---

func (s *memStore) addUser(role entity.Role, points int) *entity.User {
	user := entity.User{
		ID:     uuid.New(),
		Email:  uuid.NewString() + "@weev.test",
		Name:   "Test User",
		Role:   role,
		Active: true,
		Points: points,
		Level:  entity.LevelForPoints(points),
	}
	s.mu.Lock()
	s.users[user.ID] = user
	s.mu.Unlock()

	return &user
}

func (s *memStore) addBrand(adminID uuid.UUID) *entity.Brand {
	brand := entity.Brand{ID: uuid.New(), AdminID: adminID, Name: "Marca", Active: true}
	s.mu.Lock()
	s.brands[brand.ID] = brand
	s.mu.Unlock()

	return &brand
}

func (s *memStore) addProduct(brandID uuid.UUID, code string, active bool) *entity.Product {
	product := entity.Product{
		ID:             uuid.New(),
		BrandID:        brandID,
		Name:           "Product " + code,
		ActivationCode: entity.NormalizeActivationCode(code),
		Category:       "general",
		Active:         active,
	}
	s.mu.Lock()
	s.products[product.ID] = product
	s.mu.Unlock()

	return &product
}

func (s *memStore) addTemplate(productID uuid.UUID, rewardType entity.RewardType, value string, expiresAt *time.Time, active bool) *entity.RewardTemplate {
	template := entity.RewardTemplate{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      "Reward " + value,
		Type:      rewardType,
		Value:     value,
		ExpiresAt: expiresAt,
		Active:    active,
	}
	s.mu.Lock()
	s.templates[template.ID] = template
	s.mu.Unlock()

	return &template
}

func (s *memStore) addGrant(userID uuid.UUID, template *entity.RewardTemplate, state entity.GrantState, grantedAt time.Time) *entity.RewardGrant {
	grant := entity.RewardGrant{
		ID:         uuid.New(),
		UserID:     userID,
		TemplateID: template.ID,
		State:      state,
		GrantedAt:  grantedAt,
	}
	s.mu.Lock()
	s.grants[grant.ID] = grant
	s.mu.Unlock()

	return &grant
}

func (s *memStore) user(id uuid.UUID) entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.users[id]
}

func (s *memStore) grant(id uuid.UUID) entity.RewardGrant {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grants[id]
}

func (s *memStore) countActivations(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, a := range s.activations {
		if a.UserID == userID {
			n++
		}
	}

	return n
}

func (s *memStore) countGrants(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, g := range s.grants {
		if g.UserID == userID {
			n++
		}
	}

	return n
}

// --- factory ---

type memTx struct {
	store *memStore
	inTx  bool
}

// guard locks the store for calls made outside a transaction.
func (tx *memTx) guard() func() {
	if tx.inTx {
		return func() {}
	}
	tx.store.mu.Lock()

	return tx.store.mu.Unlock
}

type memFactory struct {
	tx *memTx
}

func (f *memFactory) UserRepo() repository.UserRepository {
	return &memUserRepo{f.tx}
}

func (f *memFactory) BrandRepo() repository.BrandRepository {
	return &memBrandRepo{f.tx}
}

func (f *memFactory) ProductRepo() repository.ProductRepository {
	return &memProductRepo{f.tx}
}

func (f *memFactory) RewardTemplateRepo() repository.RewardTemplateRepository {
	return &memTemplateRepo{f.tx}
}

func (f *memFactory) ActivationRepo() repository.ActivationRepository {
	return &memActivationRepo{f.tx}
}

func (f *memFactory) RewardGrantRepo() repository.RewardGrantRepository {
	return &memGrantRepo{f.tx}
}

// --- users and brands ---

type memUserRepo struct{ tx *memTx }

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	defer r.tx.guard()()

	user, ok := r.tx.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *memUserRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.FindByID(ctx, id)
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.tx.guard()()

	for _, user := range r.tx.store.users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.tx.guard()()

	for _, existing := range r.tx.store.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.tx.store.users[user.ID] = *user

	return nil
}

func (r *memUserRepo) UpdatePoints(_ context.Context, id uuid.UUID, points, level int) error {
	defer r.tx.guard()()

	user, ok := r.tx.store.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Points, user.Level = points, level
	r.tx.store.users[id] = user

	return nil
}

type memBrandRepo struct{ tx *memTx }

func (r *memBrandRepo) FindByAdmin(_ context.Context, adminID uuid.UUID) (*entity.Brand, error) {
	defer r.tx.guard()()

	for _, brand := range r.tx.store.brands {
		if brand.AdminID == adminID {
			return &brand, nil
		}
	}

	return nil, repository.ErrBrandNotFound
}

func (r *memBrandRepo) Create(_ context.Context, brand *entity.Brand) error {
	defer r.tx.guard()()

	r.tx.store.brands[brand.ID] = *brand

	return nil
}

// --- catalog ---

type memProductRepo struct{ tx *memTx }

func (r *memProductRepo) FindActiveByCode(_ context.Context, code string) (*entity.Product, error) {
	defer r.tx.guard()()

	for _, product := range r.tx.store.products {
		if product.ActivationCode == code && product.Active {
			return &product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	defer r.tx.guard()()

	product, ok := r.tx.store.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &product, nil
}

func (r *memProductRepo) FindByIDAndBrand(ctx context.Context, id, brandID uuid.UUID) (*entity.Product, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.BrandID != brandID {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func (r *memProductRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	defer r.tx.guard()()

	for _, product := range r.tx.store.products {
		if product.ActivationCode == code {
			return true, nil
		}
	}

	return false, nil
}

func (r *memProductRepo) List(_ context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	defer r.tx.guard()()

	var out []*entity.Product
	for _, product := range r.tx.store.products {
		if filter.BrandID != nil && product.BrandID != *filter.BrandID {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		if filter.Active != nil && product.Active != *filter.Active {
			continue
		}
		p := product
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *memProductRepo) Categories(_ context.Context) ([]string, error) {
	defer r.tx.guard()()

	seen := map[string]bool{}
	for _, product := range r.tx.store.products {
		if product.Active && product.Category != "" {
			seen[product.Category] = true
		}
	}

	return slices.Sorted(maps.Keys(seen)), nil
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	defer r.tx.guard()()

	for _, existing := range r.tx.store.products {
		if existing.ActivationCode == product.ActivationCode {
			return repository.ErrDuplicateActivationCode
		}
	}
	r.tx.store.products[product.ID] = *product

	return nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	defer r.tx.guard()()

	if _, ok := r.tx.store.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.tx.store.products[product.ID] = *product

	return nil
}

type memTemplateRepo struct{ tx *memTx }

func (r *memTemplateRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RewardTemplate, error) {
	defer r.tx.guard()()

	template, ok := r.tx.store.templates[id]
	if !ok {
		return nil, repository.ErrRewardTemplateNotFound
	}

	return &template, nil
}

func (r *memTemplateRepo) FindByIDAndBrand(_ context.Context, id, brandID uuid.UUID) (*entity.RewardTemplate, error) {
	defer r.tx.guard()()

	template, ok := r.tx.store.templates[id]
	if !ok || r.tx.store.products[template.ProductID].BrandID != brandID {
		return nil, repository.ErrRewardTemplateNotFound
	}

	return &template, nil
}

func (r *memTemplateRepo) FindActiveByProduct(_ context.Context, productID uuid.UUID) ([]*entity.RewardTemplate, error) {
	defer r.tx.guard()()

	var out []*entity.RewardTemplate
	for _, template := range r.tx.store.templates {
		if template.ProductID == productID && template.Active {
			t := template
			out = append(out, &t)
		}
	}

	return out, nil
}

func (r *memTemplateRepo) ListByBrand(_ context.Context, brandID uuid.UUID) ([]*entity.RewardTemplate, error) {
	defer r.tx.guard()()

	var out []*entity.RewardTemplate
	for _, template := range r.tx.store.templates {
		if r.tx.store.products[template.ProductID].BrandID == brandID {
			t := template
			out = append(out, &t)
		}
	}

	return out, nil
}

func (r *memTemplateRepo) Create(_ context.Context, template *entity.RewardTemplate) error {
	defer r.tx.guard()()

	r.tx.store.templates[template.ID] = *template

	return nil
}

func (r *memTemplateRepo) Update(_ context.Context, template *entity.RewardTemplate) error {
	defer r.tx.guard()()

	if _, ok := r.tx.store.templates[template.ID]; !ok {
		return repository.ErrRewardTemplateNotFound
	}
	r.tx.store.templates[template.ID] = *template

	return nil
}

// --- ledgers ---

type memActivationRepo struct{ tx *memTx }

func (r *memActivationRepo) FindByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*entity.Activation, error) {
	defer r.tx.guard()()

	if r.tx.store.blindPrecheck {
		return nil, repository.ErrActivationNotFound
	}
	for _, activation := range r.tx.store.activations {
		if activation.UserID == userID && activation.ProductID == productID {
			return &activation, nil
		}
	}

	return nil, repository.ErrActivationNotFound
}

func (r *memActivationRepo) Create(_ context.Context, activation *entity.Activation) error {
	defer r.tx.guard()()

	for _, existing := range r.tx.store.activations {
		if existing.UserID == activation.UserID && existing.ProductID == activation.ProductID {
			return repository.ErrDuplicateActivation
		}
	}
	stored := *activation
	stored.Product = nil
	r.tx.store.activations = append(r.tx.store.activations, stored)
	if r.tx.store.onActivationCreated != nil {
		r.tx.store.onActivationCreated()
	}

	return nil
}

func (r *memActivationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Activation, error) {
	defer r.tx.guard()()

	var out []*entity.Activation
	for i := len(r.tx.store.activations) - 1; i >= 0; i-- {
		activation := r.tx.store.activations[i]
		if activation.UserID != userID {
			continue
		}
		if product, ok := r.tx.store.products[activation.ProductID]; ok {
			activation.Product = &product
		}
		out = append(out, &activation)
	}

	return out, nil
}

func (r *memActivationRepo) CountByUser(_ context.Context, userID uuid.UUID) (int, error) {
	defer r.tx.guard()()

	n := 0
	for _, activation := range r.tx.store.activations {
		if activation.UserID == userID {
			n++
		}
	}

	return n, nil
}

type memGrantRepo struct{ tx *memTx }

func (r *memGrantRepo) withTemplate(grant entity.RewardGrant) *entity.RewardGrant {
	if template, ok := r.tx.store.templates[grant.TemplateID]; ok {
		grant.Template = &template
	}

	return &grant
}

func (r *memGrantRepo) CreateBatch(_ context.Context, grants []*entity.RewardGrant) error {
	defer r.tx.guard()()

	if r.tx.store.failCreateBatch != nil {
		return r.tx.store.failCreateBatch
	}
	for _, grant := range grants {
		stored := *grant
		stored.Template = nil
		r.tx.store.grants[grant.ID] = stored
	}

	return nil
}

func (r *memGrantRepo) FindByIDForUser(_ context.Context, id, userID uuid.UUID) (*entity.RewardGrant, error) {
	defer r.tx.guard()()

	grant, ok := r.tx.store.grants[id]
	if !ok || grant.UserID != userID {
		return nil, repository.ErrRewardGrantNotFound
	}

	return r.withTemplate(grant), nil
}

func (r *memGrantRepo) UpdateState(_ context.Context, id uuid.UUID, state entity.GrantState, claimedAt *time.Time) error {
	defer r.tx.guard()()

	grant, ok := r.tx.store.grants[id]
	if !ok || grant.State != entity.GrantStateAvailable {
		return repository.ErrGrantStateConflict
	}
	grant.State = state
	grant.ClaimedAt = claimedAt
	r.tx.store.grants[id] = grant

	return nil
}

func (r *memGrantRepo) ExpireDue(_ context.Context, userID uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	defer r.tx.guard()()

	var expired []uuid.UUID
	for id, grant := range r.tx.store.grants {
		if grant.UserID != userID || !r.withTemplate(grant).ShouldExpireAt(now) {
			continue
		}
		grant.State = entity.GrantStateExpired
		r.tx.store.grants[id] = grant
		expired = append(expired, id)
	}

	return expired, nil
}

func (r *memGrantRepo) ListByUser(_ context.Context, userID uuid.UUID, state *entity.GrantState) ([]*entity.RewardGrant, error) {
	defer r.tx.guard()()

	var out []*entity.RewardGrant
	for _, grant := range r.tx.store.grants {
		if grant.UserID != userID || (state != nil && grant.State != *state) {
			continue
		}
		out = append(out, r.withTemplate(grant))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GrantedAt.After(out[j].GrantedAt) })

	return out, nil
}

func (r *memGrantRepo) CountByUser(_ context.Context, userID uuid.UUID) (*entity.GrantCounts, error) {
	defer r.tx.guard()()

	counts := &entity.GrantCounts{}
	for _, grant := range r.tx.store.grants {
		if grant.UserID != userID {
			continue
		}
		counts.Total++
		switch grant.State {
		case entity.GrantStateAvailable:
			counts.Available++
		case entity.GrantStateClaimed:
			counts.Claimed++
		case entity.GrantStateExpired:
			counts.Expired++
		}
	}

	return counts, nil
}

var errStorage = errors.New("storage unavailable")

func codeOf(product *entity.Product) string {
	return strings.ToLower(product.ActivationCode)
}
