package services

import (
	"github.com/google/uuid"

	"github.com/courtlab/racketfit/internal/models"
	"github.com/courtlab/racketfit/internal/repository"
)

// mockRacketRepository is an in-memory RacketRepository for tests
type mockRacketRepository struct {
	rackets map[int64]*models.Racket
	nextID  int64
	failAll bool
}

func newMockRacketRepository() *mockRacketRepository {
	return &mockRacketRepository{rackets: map[int64]*models.Racket{}, nextID: 1}
}

func (m *mockRacketRepository) GetByID(id int64) (*models.Racket, error) {
	if r, ok := m.rackets[id]; ok {
		copy := *r
		return &copy, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockRacketRepository) Create(racket *models.Racket) error {
	racket.ID = m.nextID
	m.nextID++
	copy := *racket
	m.rackets[racket.ID] = &copy
	return nil
}

func (m *mockRacketRepository) Update(racket *models.Racket) error {
	if _, ok := m.rackets[racket.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *racket
	m.rackets[racket.ID] = &copy
	return nil
}

func (m *mockRacketRepository) Delete(id int64) error {
	if _, ok := m.rackets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rackets, id)
	return nil
}

func (m *mockRacketRepository) GetAll(filters repository.RacketFilters) ([]models.Racket, error) {
	result := []models.Racket{}
	for id := int64(1); id < m.nextID; id++ {
		r, ok := m.rackets[id]
		if !ok {
			continue
		}
		if filters.ActiveOnly && !r.IsActive {
			continue
		}
		if filters.Brand != "" && r.Brand != filters.Brand {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockRacketRepository) GetActive() ([]models.Racket, error) {
	return m.GetAll(repository.RacketFilters{ActiveOnly: true})
}

func (m *mockRacketRepository) Count() (int, error) {
	return len(m.rackets), nil
}

// mockHistoryRepository records saved rows for assertions
type mockHistoryRepository struct {
	measurements []models.HandMeasurement
	surveys      []models.SurveyResponse
	logs         []models.RecommendationLog
	saveErr      error
}

func (m *mockHistoryRepository) SaveHandMeasurement(h *models.HandMeasurement) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	m.measurements = append(m.measurements, *h)
	return nil
}

func (m *mockHistoryRepository) SaveSurveyResponse(s *models.SurveyResponse) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	m.surveys = append(m.surveys, *s)
	return nil
}

func (m *mockHistoryRepository) SaveLogs(logs []models.RecommendationLog) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.logs = append(m.logs, logs...)
	return nil
}

func (m *mockHistoryRepository) ListHandMeasurements(limit int) ([]models.HandMeasurement, error) {
	return m.measurements, nil
}

func (m *mockHistoryRepository) ListSurveyResponses(limit int) ([]models.SurveyResponse, error) {
	return m.surveys, nil
}

func (m *mockHistoryRepository) ListLogs(limit int) ([]models.RecommendationLog, error) {
	return m.logs, nil
}

func (m *mockHistoryRepository) ListLogsByRacket(racketID int64, limit int) ([]models.RecommendationLog, error) {
	result := []models.RecommendationLog{}
	for _, l := range m.logs {
		if l.RacketID == racketID {
			result = append(result, l)
		}
	}
	return result, nil
}

// mockUserRepository is an in-memory UserRepository for tests
type mockUserRepository struct {
	users map[uuid.UUID]*models.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[uuid.UUID]*models.User{}}
}

func (m *mockUserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copy := *user
	m.users[user.ID] = &copy
	return nil
}

func (m *mockUserRepository) Update(user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *user
	m.users[user.ID] = &copy
	return nil
}

func (m *mockUserRepository) Delete(id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// mockTransactionManager runs the function against the same repositories
type mockTransactionManager struct {
	repos *repository.Repositories
}

func (m *mockTransactionManager) WithTransaction(fn func(repos *repository.Repositories) error) error {
	return fn(m.repos)
}

// newMockRepositories wires the mocks into a repository collection
func newMockRepositories() (*repository.Repositories, *mockRacketRepository, *mockHistoryRepository, *mockUserRepository) {
	racket := newMockRacketRepository()
	history := &mockHistoryRepository{}
	user := newMockUserRepository()

	repos := &repository.Repositories{
		Racket:  racket,
		History: history,
		User:    user,
	}
	repos.Tx = &mockTransactionManager{repos: repos}

	return repos, racket, history, user
}
