package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository guarda usuarios en memoria. Para el selector de empresa
// necesita acceso al repositorio de empresas.
type UserRepository struct {
	mu        sync.RWMutex
	users     map[string]*entity.User
	companies *CompanyRepository
}

func NewUserRepository(companies *CompanyRepository) *UserRepository {
	return &UserRepository{
		users:     make(map[string]*entity.User),
		companies: companies,
	}
}

func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	c := *user
	return &c, nil
}

// FindByEmail devuelve el primer usuario con ese email (el login resuelve la
// empresa después, vía SwitchCompany si hay más de una).
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matches []*entity.User
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			matches = append(matches, user)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.Before(matches[j].CreatedAt) })
	c := *matches[0]
	return &c, nil
}

func (r *UserRepository) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.CompanyID == companyID && strings.EqualFold(user.Email, email) {
			c := *user
			return &c, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) ListCompaniesByEmail(email string) ([]*entity.Company, error) {
	r.mu.RLock()
	seen := make(map[string]bool)
	var companyIDs []string
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) && !seen[user.CompanyID] {
			seen[user.CompanyID] = true
			companyIDs = append(companyIDs, user.CompanyID)
		}
	}
	r.mu.RUnlock()

	var out []*entity.Company
	for _, id := range companyIDs {
		company, err := r.companies.GetByID(id)
		if err != nil {
			return nil, err
		}
		if company != nil {
			out = append(out, company)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *UserRepository) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}
