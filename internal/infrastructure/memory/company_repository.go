package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

// CompanyRepository guarda empresas y su matriz rol x módulo en memoria.
type CompanyRepository struct {
	mu        sync.RWMutex
	companies map[string]*entity.Company
	access    map[string]*entity.RoleAccess // key: companyID + "/" + roleName
}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{
		companies: make(map[string]*entity.Company),
		access:    make(map[string]*entity.RoleAccess),
	}
}

func accessKey(companyID, roleName string) string {
	return companyID + "/" + roleName
}

func copyRoleAccess(a *entity.RoleAccess) *entity.RoleAccess {
	out := *a
	out.Modules = make(map[string]bool, len(a.Modules))
	for k, v := range a.Modules {
		out.Modules[k] = v
	}
	return &out
}

func (r *CompanyRepository) Create(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *company
	r.companies[company.ID] = &stored
	return nil
}

func (r *CompanyRepository) GetByID(id string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	company, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	c := *company
	return &c, nil
}

func (r *CompanyRepository) List(limit, offset int) ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Company, 0, len(r.companies))
	for _, company := range r.companies {
		c := *company
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

func (r *CompanyRepository) GetRoleAccess(companyID, roleName string) (*entity.RoleAccess, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	access, ok := r.access[accessKey(companyID, roleName)]
	if !ok {
		return nil, nil
	}
	return copyRoleAccess(access), nil
}

func (r *CompanyRepository) ListRoleAccess(companyID string) ([]*entity.RoleAccess, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.RoleAccess
	for _, access := range r.access {
		if access.CompanyID == companyID {
			out = append(out, copyRoleAccess(access))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoleName < out[j].RoleName })
	return out, nil
}

func (r *CompanyRepository) UpsertRoleAccess(access *entity.RoleAccess) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.access[accessKey(access.CompanyID, access.RoleName)] = copyRoleAccess(access)
	return nil
}
