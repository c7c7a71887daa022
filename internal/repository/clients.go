package repository

import (
	"sync"

	"github.com/vmaciel/branchbank/internal/models"
)

// ClientRepository is the registry of clients keyed by tax id, kept in
// registration order. Access is serialized; the registry is a shared
// collection.
type ClientRepository struct {
	mu      sync.Mutex
	clients []*models.PhysicalPersonClient
	byTaxID map[string]*models.PhysicalPersonClient
}

// NewClientRepository creates an empty registry.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		byTaxID: make(map[string]*models.PhysicalPersonClient),
	}
}

// Register adds a client, rejecting tax id collisions with
// models.ErrDuplicateClient.
func (r *ClientRepository) Register(c *models.PhysicalPersonClient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byTaxID[c.TaxID()]; ok {
		return models.ErrDuplicateClient
	}
	r.clients = append(r.clients, c)
	r.byTaxID[c.TaxID()] = c
	return nil
}

// Exists reports whether a client is registered under taxID.
func (r *ClientRepository) Exists(taxID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byTaxID[taxID]
	return ok
}

// FindByTaxID looks a client up by its external key, returning
// models.ErrClientNotFound when absent.
func (r *ClientRepository) FindByTaxID(taxID string) (*models.PhysicalPersonClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byTaxID[taxID]
	if !ok {
		return nil, models.ErrClientNotFound
	}
	return c, nil
}

// All returns the registered clients in registration order.
func (r *ClientRepository) All() []*models.PhysicalPersonClient {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.PhysicalPersonClient, len(r.clients))
	copy(out, r.clients)
	return out
}

// Records snapshots the registry into its persisted shape.
func (r *ClientRepository) Records() []ClientRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ClientRecord, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, NewClientRecord(c))
	}
	return out
}

// Restore rebuilds the registry from persisted records, replacing any
// current state. Records with a duplicate tax id are skipped.
func (r *ClientRepository) Restore(records []ClientRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = nil
	r.byTaxID = make(map[string]*models.PhysicalPersonClient)
	for _, rec := range records {
		if _, ok := r.byTaxID[rec.TaxID]; ok {
			continue
		}
		c := rec.ToClient()
		r.clients = append(r.clients, c)
		r.byTaxID[c.TaxID()] = c
	}
}
