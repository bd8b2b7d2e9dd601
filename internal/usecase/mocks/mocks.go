package mocks

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fueleu/banking/internal/domain"
	"github.com/fueleu/banking/internal/usecase"
)

// MockBankEntryRepository is a mock implementation of BankEntryRepository.
type MockBankEntryRepository struct {
	mu      sync.RWMutex
	entries []*domain.BankEntry

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, entry *domain.BankEntry) error
	ListByShipYearFunc func(ctx context.Context, shipID string, year int) ([]*domain.BankEntry, error)
	ListByShipFunc     func(ctx context.Context, shipID string) ([]*domain.BankEntry, error)
	ListAllFunc        func(ctx context.Context) ([]*domain.BankEntry, error)
	SumAvailableFunc   func(ctx context.Context, shipID string) (decimal.Decimal, error)
	SumAvailableTxFunc func(ctx context.Context, tx usecase.Transaction, shipID string) (decimal.Decimal, error)
}

func NewMockBankEntryRepository() *MockBankEntryRepository {
	return &MockBankEntryRepository{}
}

// Seed preloads entries without going through Create hooks.
func (m *MockBankEntryRepository) Seed(entries ...*domain.BankEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
}

// EntryCount returns the number of stored entries.
func (m *MockBankEntryRepository) EntryCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *MockBankEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.BankEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockBankEntryRepository) ListByShipYear(ctx context.Context, shipID string, year int) ([]*domain.BankEntry, error) {
	if m.ListByShipYearFunc != nil {
		return m.ListByShipYearFunc(ctx, shipID, year)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.BankEntry
	for _, e := range m.entries {
		if e.ShipID == shipID && e.Year == year {
			result = append(result, e)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (m *MockBankEntryRepository) ListByShip(ctx context.Context, shipID string) ([]*domain.BankEntry, error) {
	if m.ListByShipFunc != nil {
		return m.ListByShipFunc(ctx, shipID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.BankEntry
	for _, e := range m.entries {
		if e.ShipID == shipID {
			result = append(result, e)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (m *MockBankEntryRepository) ListAll(ctx context.Context) ([]*domain.BankEntry, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.BankEntry, len(m.entries))
	copy(result, m.entries)
	sortNewestFirst(result)
	return result, nil
}

func (m *MockBankEntryRepository) SumAvailable(ctx context.Context, shipID string) (decimal.Decimal, error) {
	if m.SumAvailableFunc != nil {
		return m.SumAvailableFunc(ctx, shipID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, e := range m.entries {
		if e.ShipID == shipID {
			sum = sum.Add(e.AmountGco2eq)
		}
	}
	return sum, nil
}

func (m *MockBankEntryRepository) SumAvailableTx(ctx context.Context, tx usecase.Transaction, shipID string) (decimal.Decimal, error) {
	if m.SumAvailableTxFunc != nil {
		return m.SumAvailableTxFunc(ctx, tx, shipID)
	}
	return m.SumAvailable(ctx, shipID)
}

func sortNewestFirst(entries []*domain.BankEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

// MockComplianceRepository is a mock implementation of ComplianceRepository.
type MockComplianceRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.ComplianceRecord

	GetFunc          func(ctx context.Context, shipID string, year int) (*domain.ComplianceRecord, error)
	GetForUpdateFunc func(ctx context.Context, tx usecase.Transaction, shipID string, year int) (*domain.ComplianceRecord, error)
	UpdateCBFunc     func(ctx context.Context, tx usecase.Transaction, shipID string, year int, cb decimal.Decimal, updatedAt time.Time) error
}

func NewMockComplianceRepository() *MockComplianceRepository {
	return &MockComplianceRepository{
		records: make(map[string]*domain.ComplianceRecord),
	}
}

func complianceKey(shipID string, year int) string {
	return shipID + ":" + strconv.Itoa(year)
}

// Seed stores a compliance record for lookups.
func (m *MockComplianceRepository) Seed(record *domain.ComplianceRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[complianceKey(record.ShipID, record.Year)] = record
}

// CB returns the stored balance for a ship-year, or zero if absent.
func (m *MockComplianceRepository) CB(shipID string, year int) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.records[complianceKey(shipID, year)]; ok {
		return rec.CBGco2eq
	}
	return decimal.Zero
}

func (m *MockComplianceRepository) Get(ctx context.Context, shipID string, year int) (*domain.ComplianceRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, shipID, year)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.records[complianceKey(shipID, year)]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, domain.ErrComplianceNotFound
}

func (m *MockComplianceRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, shipID string, year int) (*domain.ComplianceRecord, error) {
	if m.GetForUpdateFunc != nil {
		return m.GetForUpdateFunc(ctx, tx, shipID, year)
	}
	return m.Get(ctx, shipID, year)
}

func (m *MockComplianceRepository) UpdateCB(ctx context.Context, tx usecase.Transaction, shipID string, year int, cb decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateCBFunc != nil {
		return m.UpdateCBFunc(ctx, tx, shipID, year, cb, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[complianceKey(shipID, year)]
	if !ok {
		return domain.ErrComplianceNotFound
	}
	rec.CBGco2eq = cb
	return nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu           sync.Mutex
	Transactions []*MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockShipLocker is a mock implementation of ShipLocker.
type MockShipLocker struct {
	mu           sync.Mutex
	LockedShips  []string
	LockShipFunc func(ctx context.Context, tx usecase.Transaction, shipID string) error
}

func NewMockShipLocker() *MockShipLocker {
	return &MockShipLocker{}
}

func (m *MockShipLocker) LockShip(ctx context.Context, tx usecase.Transaction, shipID string) error {
	if m.LockShipFunc != nil {
		return m.LockShipFunc(ctx, tx, shipID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LockedShips = append(m.LockedShips, shipID)
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu           sync.Mutex
	counter      int
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "entry-" + strconv.Itoa(m.counter)
}

// MockRetrier is a pass-through implementation of Retrier.
type MockRetrier struct {
	Calls     int
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	m.Calls++
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is an in-memory implementation of Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", ErrCacheMiss
}

// ErrCacheMiss is returned by MockCache.Get for absent keys.
var ErrCacheMiss = errors.New("cache miss")

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// MockIdempotencyStore is an in-memory implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{values: make(map[string][]byte)}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.values[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.values[key] = response
	} else {
		m.values[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = response
	return nil
}

func (m *MockIdempotencyStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
