package service

// In-memory repository stubs shared by the service tests. They mirror the
// observable behavior of the GORM implementations closely enough for unit
// testing: gorm.ErrRecordNotFound on misses, newest-first log listings,
// case-insensitive username lookup.

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Digga-coder/POS-FRECUENZY/internal/model"
	"github.com/Digga-coder/POS-FRECUENZY/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── ProductRepository stub ───────────────────────────────────────────────────

type stubProductRepo struct {
	products     map[int]*model.Product
	nextID       int
	decrements   []int         // product ids, one entry per DecrementStock call
	decrementErr map[int]error // forced failures per product id
}

// newStubProductRepo seeds rows without advancing nextID, matching how
// explicit-id inserts leave a Postgres serial sequence untouched.
func newStubProductRepo(seed ...model.Product) *stubProductRepo {
	r := &stubProductRepo{
		products:     make(map[int]*model.Product),
		decrementErr: make(map[int]error),
	}
	for _, p := range seed {
		cloned := p
		r.products[p.ID] = &cloned
	}
	return r
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	}
	// Mirror the `gorm:"default:5"` column default: GORM omits a zero
	// StockMinimum from the INSERT and reads the default back via RETURNING.
	if p.StockMinimum == 0 {
		p.StockMinimum = 5
	}
	p.CreatedAt = time.Now()
	cloned := *p
	r.products[p.ID] = &cloned
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProductRepo) ListMixers(_ context.Context) ([]model.Product, error) {
	all, _ := r.List(context.Background())
	var out []model.Product
	for _, p := range all {
		if p.IsMixer {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *p
	r.products[p.ID] = &cloned
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) SyncIDSequence(_ context.Context) error {
	for id := range r.products {
		if id > r.nextID {
			r.nextID = id
		}
	}
	return nil
}

func (r *stubProductRepo) DecrementStock(_ context.Context, id, units int) error {
	if err := r.decrementErr[id]; err != nil {
		return err
	}
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockCurrent -= units
	r.decrements = append(r.decrements, id)
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── OrderRepository stub ─────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders    []model.Order
	createErr error
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			cloned := r.orders[i]
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubOrderRepo) List(_ context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if filter.Date != "" && o.CreatedAt.UTC().Format("2006-01-02") != filter.Date {
			continue
		}
		out = append(out, o)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *stubOrderRepo) SumTotalByDate(_ context.Context, date string) (string, int64, error) {
	sum := "0"
	var count int64
	total := decimal.Zero
	for _, o := range r.orders {
		if o.CreatedAt.UTC().Format("2006-01-02") != date {
			continue
		}
		total = total.Add(o.TotalAmount)
		count++
	}
	if count > 0 {
		sum = total.StringFixed(2)
	}
	return sum, count, nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// ── StockLogRepository stub ──────────────────────────────────────────────────

type stubStockLogRepo struct {
	logs      []model.StockLog
	createErr error
}

func (r *stubStockLogRepo) Create(_ context.Context, l *model.StockLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.logs = append(r.logs, *l)
	return nil
}

func (r *stubStockLogRepo) List(_ context.Context, filter repository.StockLogFilter) ([]model.StockLog, error) {
	out := make([]model.StockLog, 0, len(r.logs))
	for _, l := range r.logs {
		if filter.Date != "" && l.Date.UTC().Format("2006-01-02") != filter.Date {
			continue
		}
		out = append(out, l)
	}
	// Newest first, like the SQL implementation.
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *stubStockLogRepo) CountByDate(_ context.Context, date string) (int64, error) {
	var count int64
	for _, l := range r.logs {
		if l.Date.UTC().Format("2006-01-02") == date {
			count++
		}
	}
	return count, nil
}

var _ repository.StockLogRepository = (*stubStockLogRepo)(nil)

// ── WaiterRepository stub ────────────────────────────────────────────────────

type stubWaiterRepo struct {
	waiters []model.Waiter
}

func (r *stubWaiterRepo) Create(_ context.Context, w *model.Waiter) error {
	w.CreatedAt = time.Now()
	r.waiters = append(r.waiters, *w)
	return nil
}

func (r *stubWaiterRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Waiter, error) {
	for i := range r.waiters {
		if r.waiters[i].ID == id {
			cloned := r.waiters[i]
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWaiterRepo) FindByUsername(_ context.Context, username string) (*model.Waiter, error) {
	for i := range r.waiters {
		if strings.EqualFold(r.waiters[i].Username, username) {
			cloned := r.waiters[i]
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWaiterRepo) List(_ context.Context) ([]model.Waiter, error) {
	return append([]model.Waiter(nil), r.waiters...), nil
}

func (r *stubWaiterRepo) Update(_ context.Context, w *model.Waiter) error {
	for i := range r.waiters {
		if r.waiters[i].ID == w.ID {
			r.waiters[i] = *w
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubWaiterRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.waiters {
		if r.waiters[i].ID == id {
			r.waiters = append(r.waiters[:i], r.waiters[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ repository.WaiterRepository = (*stubWaiterRepo)(nil)

// ── CategoryRepository stub ──────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories []model.Category
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	return append([]model.Category(nil), r.categories...), nil
}

func (r *stubCategoryRepo) UpsertAll(_ context.Context, categories []model.Category) error {
	r.categories = append([]model.Category(nil), categories...)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// ── CartStore stub ───────────────────────────────────────────────────────────

// memCartStore copies carts on read and write, matching the serialization
// boundary of the Redis store: mutating a returned cart never leaks into the
// stored state until Save.
type memCartStore struct {
	carts map[string]model.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]model.Cart)}
}

func (s *memCartStore) Get(_ context.Context, waiterID string) (*model.Cart, error) {
	cart, ok := s.carts[waiterID]
	if !ok {
		return &model.Cart{WaiterID: waiterID, Items: []model.CartItem{}}, nil
	}
	cloned := model.Cart{WaiterID: cart.WaiterID, Items: append([]model.CartItem(nil), cart.Items...)}
	return &cloned, nil
}

func (s *memCartStore) Save(_ context.Context, cart *model.Cart) error {
	s.carts[cart.WaiterID] = model.Cart{
		WaiterID: cart.WaiterID,
		Items:    append([]model.CartItem(nil), cart.Items...),
	}
	return nil
}

func (s *memCartStore) Clear(_ context.Context, waiterID string) error {
	delete(s.carts, waiterID)
	return nil
}

var _ repository.CartStore = (*memCartStore)(nil)
