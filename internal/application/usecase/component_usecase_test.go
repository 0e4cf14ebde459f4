package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/labstock-api/internal/application/dto"
	"github.com/jhoicas/labstock-api/internal/application/usecase"
	"github.com/jhoicas/labstock-api/internal/domain"
	"github.com/jhoicas/labstock-api/internal/domain/entity"
	"github.com/jhoicas/labstock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de componentes
// ──────────────────────────────────────────────────────────────────────────────

type fakeComponentRepo struct {
	components  map[string]entity.Component
	partNumbers map[string]bool
}

func newFakeComponentRepo() *fakeComponentRepo {
	return &fakeComponentRepo{
		components:  make(map[string]entity.Component),
		partNumbers: make(map[string]bool),
	}
}

func (r *fakeComponentRepo) Create(c *entity.Component) error {
	if r.partNumbers[c.PartNumber] {
		return domain.ErrDuplicate
	}
	r.partNumbers[c.PartNumber] = true
	r.components[c.ID] = *c
	return nil
}

func (r *fakeComponentRepo) GetByID(id string) (*entity.Component, error) {
	c, ok := r.components[id]
	if !ok {
		return nil, nil
	}
	copied := c
	return &copied, nil
}

func (r *fakeComponentRepo) GetForUpdate(id string) (*entity.Component, error) {
	return r.GetByID(id)
}

func (r *fakeComponentRepo) Update(c *entity.Component) error {
	r.components[c.ID] = *c
	return nil
}

func (r *fakeComponentRepo) UpdateStock(c *entity.Component) error {
	r.components[c.ID] = *c
	return nil
}

func (r *fakeComponentRepo) List(_ repository.ComponentFilter, _, _ int) ([]*entity.Component, error) {
	out := make([]*entity.Component, 0, len(r.components))
	for _, c := range r.components {
		copied := c
		out = append(out, &copied)
	}
	return out, nil
}

func validCreateRequest() dto.CreateComponentRequest {
	return dto.CreateComponentRequest{
		Name:              "Condensador 100nF",
		PartNumber:        "CAP-100NF-50V",
		Manufacturer:      "Murata",
		Category:          "Capacitors",
		InitialQuantity:   50,
		LocationBin:       "B-12",
		UnitPrice:         decimal.NewFromFloat(0.15),
		LowStockThreshold: 10,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SiembraCantidadInicialYCreador(t *testing.T) {
	repo := newFakeComponentRepo()
	uc := usecase.NewComponentUseCase(repo)

	out, err := uc.Create("user-1", validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "el ID lo genera el servidor")
	assert.Equal(t, int64(50), out.CurrentQuantity,
		"la cantidad inicial siembra la caché")
	assert.Equal(t, "user-1", out.CreatedBy)
	assert.Nil(t, out.LastInwardDate, "la apertura no cuenta como entrada")
	assert.Nil(t, out.LastOutwardDate)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(50), stored.InitialQuantity,
		"el saldo de apertura queda registrado para el replay del balance")
}

func TestCreate_ValidaCampos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateComponentRequest)
	}{
		{"nombre vacío", func(r *dto.CreateComponentRequest) { r.Name = "  " }},
		{"part number vacío", func(r *dto.CreateComponentRequest) { r.PartNumber = "" }},
		{"ubicación vacía", func(r *dto.CreateComponentRequest) { r.LocationBin = "" }},
		{"categoría desconocida", func(r *dto.CreateComponentRequest) { r.Category = "Gadgets" }},
		{"cantidad inicial negativa", func(r *dto.CreateComponentRequest) { r.InitialQuantity = -1 }},
		{"umbral negativo", func(r *dto.CreateComponentRequest) { r.LowStockThreshold = -1 }},
		{"precio negativo", func(r *dto.CreateComponentRequest) { r.UnitPrice = decimal.NewFromInt(-1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := usecase.NewComponentUseCase(newFakeComponentRepo())
			req := validCreateRequest()
			tc.mutate(&req)

			_, err := uc.Create("user-1", req)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_PartNumberDuplicado(t *testing.T) {
	repo := newFakeComponentRepo()
	uc := usecase.NewComponentUseCase(repo)

	_, err := uc.Create("user-1", validCreateRequest())
	require.NoError(t, err)

	_, err = uc.Create("user-1", validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Cantidad inicial cero es válida: componente catalogado sin stock todavía.
func TestCreate_CantidadInicialCeroEsValida(t *testing.T) {
	uc := usecase.NewComponentUseCase(newFakeComponentRepo())
	req := validCreateRequest()
	req.InitialQuantity = 0

	out, err := uc.Create("user-1", req)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.CurrentQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetByID / Update / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_InexistenteDevuelveNil(t *testing.T) {
	uc := usecase.NewComponentUseCase(newFakeComponentRepo())

	out, err := uc.GetByID("no-existe")

	require.NoError(t, err)
	assert.Nil(t, out, "inexistente es (nil, nil); el handler lo traduce a 404")
}

func TestUpdate_SoloCamposDescriptivos(t *testing.T) {
	repo := newFakeComponentRepo()
	uc := usecase.NewComponentUseCase(repo)

	created, err := uc.Create("user-1", validCreateRequest())
	require.NoError(t, err)

	newName := "Condensador cerámico 100nF"
	newPrice := decimal.NewFromFloat(0.18)
	out, err := uc.Update(created.ID, dto.UpdateComponentRequest{
		Name:      &newName,
		UnitPrice: &newPrice,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, newName, out.Name)
	assert.True(t, newPrice.Equal(out.UnitPrice))
	assert.Equal(t, int64(50), out.CurrentQuantity,
		"el update de catálogo nunca toca la cantidad")
}

func TestUpdate_CategoriaInvalidaEsError(t *testing.T) {
	repo := newFakeComponentRepo()
	uc := usecase.NewComponentUseCase(repo)

	created, err := uc.Create("user-1", validCreateRequest())
	require.NoError(t, err)

	bad := "Gadgets"
	_, err = uc.Update(created.ID, dto.UpdateComponentRequest{Category: &bad})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_InexistenteDevuelveNil(t *testing.T) {
	uc := usecase.NewComponentUseCase(newFakeComponentRepo())

	name := "x"
	out, err := uc.Update("no-existe", dto.UpdateComponentRequest{Name: &name})

	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestList_FiltroDeCategoriaInvalidoEsError(t *testing.T) {
	uc := usecase.NewComponentUseCase(newFakeComponentRepo())

	_, err := uc.List(repository.ComponentFilter{Category: "Gadgets"}, 20, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_DevuelveItemsYPagina(t *testing.T) {
	repo := newFakeComponentRepo()
	uc := usecase.NewComponentUseCase(repo)

	_, err := uc.Create("user-1", validCreateRequest())
	require.NoError(t, err)

	out, err := uc.List(repository.ComponentFilter{}, 20, 0)
	require.NoError(t, err)

	assert.Len(t, out.Items, 1)
	assert.Equal(t, 20, out.Page.Limit)
	assert.Equal(t, 0, out.Page.Offset)
}
