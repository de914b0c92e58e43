// Package fakes ofrece repositorios en memoria para los tests de casos de uso y handlers.
// Reproducen las llaves foráneas del esquema y cuentan las llamadas recibidas.
package fakes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

// Store base de datos en memoria compartida por todos los repositorios fake.
type Store struct {
	mu sync.Mutex

	Companies    map[int64]*entity.Company
	Clients      map[int64]*entity.Client
	Products     map[int64]*entity.Product
	Sales        map[int64]*entity.Sale
	Negotiations map[int64]*entity.Negotiation
	Accounts     map[string]string

	// Err, si no es nil, es devuelto por cualquier llamada.
	Err error
	// Calls cuenta las llamadas recibidas por los repositorios.
	Calls int
	// Deletes cuenta los DELETE ejecutados.
	Deletes int

	nextID int64
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		Companies:    map[int64]*entity.Company{},
		Clients:      map[int64]*entity.Client{},
		Products:     map[int64]*entity.Product{},
		Sales:        map[int64]*entity.Sale{},
		Negotiations: map[int64]*entity.Negotiation{},
		Accounts:     map[string]string{},
	}
}

func (s *Store) begin() (func(), error) {
	s.mu.Lock()
	s.Calls++
	if s.Err != nil {
		err := s.Err
		s.mu.Unlock()
		return func() {}, err
	}
	return s.mu.Unlock, nil
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func sortedKeys[T any](m map[int64]T) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ── Siembra ──────────────────────────────────────────────────────────────────

// AddCompany inserta una empresa sin contar la llamada.
func (s *Store) AddCompany(c entity.Company) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	s.Companies[c.ID] = &c
	return c.ID
}

// AddClient inserta un cliente sin contar la llamada.
func (s *Store) AddClient(c entity.Client) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	s.Clients[c.ID] = &c
	return c.ID
}

// AddProduct inserta un producto sin contar la llamada.
func (s *Store) AddProduct(p entity.Product) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	s.Products[p.ID] = &p
	return p.ID
}

// AddSale inserta una venta sin contar la llamada.
func (s *Store) AddSale(v entity.Sale) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.id()
	s.Sales[v.ID] = &v
	return v.ID
}

// AddNegotiation inserta una negociación sin contar la llamada.
func (s *Store) AddNegotiation(n entity.Negotiation) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.id()
	s.Negotiations[n.ID] = &n
	return n.ID
}

// Reset pone a cero los contadores.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = 0
	s.Deletes = 0
}

// ── Empresas ─────────────────────────────────────────────────────────────────

// CompanyRepo fake de repository.CompanyRepository.
type CompanyRepo struct{ s *Store }

var _ repository.CompanyRepository = CompanyRepo{}

// CompanyRepo devuelve el repositorio de empresas.
func (s *Store) CompanyRepo() CompanyRepo { return CompanyRepo{s} }

func (r CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Company, 0, len(r.s.Companies))
	for _, id := range sortedKeys(r.s.Companies) {
		c := *r.s.Companies[id]
		list = append(list, &c)
	}
	return list, nil
}

func (r CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	company.ID = r.s.id()
	c := *company
	r.s.Companies[c.ID] = &c
	return nil
}

func (r CompanyRepo) Exists(ctx context.Context, id int64) (bool, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return false, err
	}
	_, ok := r.s.Companies[id]
	return ok, nil
}

func (r CompanyRepo) HasClients(ctx context.Context, id int64) (bool, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return false, err
	}
	for _, c := range r.s.Clients {
		if c.CompanyID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r CompanyRepo) Delete(ctx context.Context, id int64) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	r.s.Deletes++
	if _, ok := r.s.Companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.Companies, id)
	return nil
}

// ── Clientes ─────────────────────────────────────────────────────────────────

// ClientRepo fake de repository.ClientRepository.
type ClientRepo struct{ s *Store }

var _ repository.ClientRepository = ClientRepo{}

// ClientRepo devuelve el repositorio de clientes.
func (s *Store) ClientRepo() ClientRepo { return ClientRepo{s} }

func (r ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Client, 0, len(r.s.Clients))
	for _, id := range sortedKeys(r.s.Clients) {
		c := *r.s.Clients[id]
		list = append(list, &c)
	}
	return list, nil
}

func (r ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	if _, ok := r.s.Companies[client.CompanyID]; !ok {
		return &domain.ForeignKeyError{Reference: "empresa"}
	}
	client.ID = r.s.id()
	c := *client
	r.s.Clients[c.ID] = &c
	return nil
}

func (r ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return nil, err
	}
	c, ok := r.s.Clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r ClientRepo) Exists(ctx context.Context, id int64) (bool, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return false, err
	}
	_, ok := r.s.Clients[id]
	return ok, nil
}

func (r ClientRepo) HasDependents(ctx context.Context, id int64) (bool, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return false, err
	}
	for _, n := range r.s.Negotiations {
		if n.ClientID == id {
			return true, nil
		}
	}
	for _, v := range r.s.Sales {
		if v.ClientID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r ClientRepo) Delete(ctx context.Context, id int64) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	r.s.Deletes++
	if _, ok := r.s.Clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.Clients, id)
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────────

// ProductRepo fake de repository.ProductRepository.
type ProductRepo struct{ s *Store }

var _ repository.ProductRepository = ProductRepo{}

// ProductRepo devuelve el repositorio de productos.
func (s *Store) ProductRepo() ProductRepo { return ProductRepo{s} }

func (r ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Product, 0, len(r.s.Products))
	for _, id := range sortedKeys(r.s.Products) {
		p := *r.s.Products[id]
		list = append(list, &p)
	}
	return list, nil
}

func (r ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	product.ID = r.s.id()
	p := *product
	r.s.Products[p.ID] = &p
	return nil
}

func (r ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return nil, err
	}
	p, ok := r.s.Products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	if _, ok := r.s.Products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	p := *product
	r.s.Products[p.ID] = &p
	return nil
}

func (r ProductRepo) Exists(ctx context.Context, id int64) (bool, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return false, err
	}
	_, ok := r.s.Products[id]
	return ok, nil
}

func (r ProductRepo) HasSales(ctx context.Context, id int64) (bool, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return false, err
	}
	for _, v := range r.s.Sales {
		if v.ProductID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r ProductRepo) Delete(ctx context.Context, id int64) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	r.s.Deletes++
	if _, ok := r.s.Products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.Products, id)
	return nil
}

// ── Ventas ───────────────────────────────────────────────────────────────────

// SaleRepo fake de repository.SaleRepository.
type SaleRepo struct{ s *Store }

var _ repository.SaleRepository = SaleRepo{}

// SaleRepo devuelve el repositorio de ventas.
func (s *Store) SaleRepo() SaleRepo { return SaleRepo{s} }

func (r SaleRepo) checkRefs(sale *entity.Sale) error {
	if _, ok := r.s.Clients[sale.ClientID]; !ok {
		return &domain.ForeignKeyError{Reference: "cliente"}
	}
	if _, ok := r.s.Products[sale.ProductID]; !ok {
		return &domain.ForeignKeyError{Reference: "producto"}
	}
	return nil
}

func (r SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Sale, 0, len(r.s.Sales))
	for _, id := range sortedKeys(r.s.Sales) {
		v := *r.s.Sales[id]
		list = append(list, &v)
	}
	return list, nil
}

func (r SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	if err := r.checkRefs(sale); err != nil {
		return err
	}
	sale.ID = r.s.id()
	v := *sale
	r.s.Sales[v.ID] = &v
	return nil
}

func (r SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return nil, err
	}
	v, ok := r.s.Sales[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r SaleRepo) Update(ctx context.Context, sale *entity.Sale) (int64, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return 0, err
	}
	current, ok := r.s.Sales[sale.ID]
	if !ok {
		return 0, nil
	}
	if err := r.checkRefs(sale); err != nil {
		return 0, err
	}
	v := *sale
	if v.PaymentMethod == "" {
		v.PaymentMethod = current.PaymentMethod
	}
	if v.PaymentStatus == "" {
		v.PaymentStatus = current.PaymentStatus
	}
	r.s.Sales[v.ID] = &v
	return 1, nil
}

func (r SaleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return false, err
	}
	_, ok := r.s.Sales[id]
	return ok, nil
}

func (r SaleRepo) Delete(ctx context.Context, id int64) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	r.s.Deletes++
	if _, ok := r.s.Sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.Sales, id)
	return nil
}

// ── Negociaciones ────────────────────────────────────────────────────────────

// NegotiationRepo fake de repository.NegotiationRepository.
type NegotiationRepo struct{ s *Store }

var _ repository.NegotiationRepository = NegotiationRepo{}

// NegotiationRepo devuelve el repositorio de negociaciones.
func (s *Store) NegotiationRepo() NegotiationRepo { return NegotiationRepo{s} }

func (r NegotiationRepo) List(ctx context.Context) ([]*entity.Negotiation, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Negotiation, 0, len(r.s.Negotiations))
	for _, id := range sortedKeys(r.s.Negotiations) {
		n := *r.s.Negotiations[id]
		if c, ok := r.s.Clients[n.ClientID]; ok {
			name := c.Name
			n.ClientName = &name
		}
		list = append(list, &n)
	}
	return list, nil
}

func (r NegotiationRepo) Create(ctx context.Context, negotiation *entity.Negotiation) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	if _, ok := r.s.Clients[negotiation.ClientID]; !ok {
		return &domain.ForeignKeyError{Reference: "cliente"}
	}
	negotiation.ID = r.s.id()
	n := *negotiation
	r.s.Negotiations[n.ID] = &n
	return nil
}

func (r NegotiationRepo) UpdateStatus(ctx context.Context, id int64, status string, closeDate *time.Time) error {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return err
	}
	n, ok := r.s.Negotiations[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.Status = status
	n.CloseDate = closeDate
	return nil
}

// ── Cuentas ──────────────────────────────────────────────────────────────────

// AccountRepo fake de repository.AccountRepository.
type AccountRepo struct{ s *Store }

var _ repository.AccountRepository = AccountRepo{}

// AccountRepo devuelve el repositorio de cuentas.
func (s *Store) AccountRepo() AccountRepo { return AccountRepo{s} }

func (r AccountRepo) MatchCredentials(ctx context.Context, email, password string) (bool, error) {
	done, err := r.s.begin()
	defer done()
	if err != nil {
		return false, err
	}
	stored, ok := r.s.Accounts[email]
	return ok && stored == password, nil
}
