package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventory/internal/application/auth"
	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/infrastructure/memory"
)

const companyID = "company-1"

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "erp-inventory-test"}

// repo que falla en la consulta por email, simulando una caída de
// infraestructura.
type failingUserRepo struct {
	*memory.UserRepository
}

var errRepoDown = errors.New("conexión perdida")

func (r *failingUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	return nil, errRepoDown
}

func newCompanies(t *testing.T) *memory.CompanyRepository {
	t.Helper()
	companies := memory.NewCompanyRepository()
	require.NoError(t, companies.Create(&entity.Company{ID: companyID, Name: "Acme SAS"}))
	return companies
}

func TestRegisterUser_EmailDuplicadoRetornaError(t *testing.T) {
	companies := newCompanies(t)
	uc := auth.NewAuthUseCase(memory.NewUserRepository(companies), companies, testJWT)

	in := dto.RegisterRequest{CompanyID: companyID, Email: "ana@acme.co", Password: "secreto123"}
	_, err := uc.RegisterUser(in)
	require.NoError(t, err)

	_, err = uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Una falla del repositorio en el chequeo de email debe propagarse, no
// leerse como "el email está libre".
func TestRegisterUser_FallaDelRepoSePropaga(t *testing.T) {
	companies := newCompanies(t)
	uc := auth.NewAuthUseCase(&failingUserRepo{memory.NewUserRepository(companies)}, companies, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{CompanyID: companyID, Email: "ana@acme.co", Password: "secreto123"})
	assert.ErrorIs(t, err, errRepoDown)
}
