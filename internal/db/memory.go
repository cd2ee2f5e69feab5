package db

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memNode struct {
	label string
	props map[string]any
}

type memEdge struct {
	from, to int64
	typ      string
}

// MemoryGraph keeps the graph in-process. It mirrors the statement semantics
// of DB, including silent no-ops, and is used for local runs and tests.
type MemoryGraph struct {
	mu     sync.RWMutex
	nextID int64
	nodes  map[int64]*memNode
	order  []int64
	edges  []memEdge
}

// NewMemoryGraph initializes an empty graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{nodes: make(map[int64]*memNode)}
}

func (m *MemoryGraph) Ping(context.Context) error  { return nil }
func (m *MemoryGraph) Close(context.Context) error { return nil }

// create must be called with the write lock held.
func (m *MemoryGraph) create(label string, props map[string]any) int64 {
	id := m.nextID
	m.nextID++
	m.nodes[id] = &memNode{label: label, props: props}
	m.order = append(m.order, id)
	return id
}

// node must be called with a lock held.
func (m *MemoryGraph) node(label string, id int64) (*memNode, bool) {
	n, ok := m.nodes[id]
	if !ok || n.label != label {
		return nil, false
	}
	return n, true
}

// detach must be called with the write lock held.
func (m *MemoryGraph) detach(id int64) {
	delete(m.nodes, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	kept := m.edges[:0]
	for _, e := range m.edges {
		if e.from != id && e.to != id {
			kept = append(kept, e)
		}
	}
	m.edges = kept
}

// each must be called with a lock held. It visits nodes of label in insertion order.
func (m *MemoryGraph) each(label string, fn func(id int64, n *memNode)) {
	for _, id := range m.order {
		if n := m.nodes[id]; n.label == label {
			fn(id, n)
		}
	}
}

func copyProps(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

// userMemProps stores the same Go types the driver would hand back.
func userMemProps(u User) map[string]any {
	return map[string]any{"username": u.Username, "email": u.Email, "password": u.Password, "role": u.Role}
}

func (m *MemoryGraph) emailTaken(email string) bool {
	taken := false
	m.each(LabelUser, func(_ int64, n *memNode) {
		if n.props["email"] == email {
			taken = true
		}
	})
	return taken
}

func (m *MemoryGraph) EmailTaken(_ context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.emailTaken(email), nil
}

func (m *MemoryGraph) AddUser(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(u.Email) {
		return ErrEmailTaken
	}
	m.create(LabelUser, userMemProps(u))
	return nil
}

func (m *MemoryGraph) MatchCredentials(_ context.Context, username, password string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.order {
		n := m.nodes[id]
		if n.label == LabelUser && n.props["username"] == username && n.props["password"] == password {
			return id, nil
		}
	}
	return 0, ErrInvalidCredentials
}

func (m *MemoryGraph) CredentialsByUsername(_ context.Context, username string) ([]Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Credential
	m.each(LabelUser, func(id int64, n *memNode) {
		if n.props["username"] == username {
			pw, _ := n.props["password"].(string)
			out = append(out, Credential{UserID: id, Password: pw})
		}
	})
	return out, nil
}

func (m *MemoryGraph) RemoveUser(_ context.Context, id int64) error {
	return m.removeChecked(LabelUser, id)
}

func (m *MemoryGraph) UpdateUser(_ context.Context, id int64, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.node(LabelUser, id)
	if !ok {
		return ErrNotFound
	}
	for k, v := range userMemProps(u) {
		n.props[k] = v
	}
	return nil
}

func (m *MemoryGraph) AllUsers(context.Context) ([]Entry, error) {
	return m.entries(LabelUser, userAttributes), nil
}

func (m *MemoryGraph) AddReservation(_ context.Context, userID int64, r Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.node(LabelUser, userID); !ok {
		return nil
	}
	id := m.create(LabelReservation, map[string]any{
		"reservationDate": r.ReservationDate,
		"duration":        int64(r.Duration),
	})
	m.edges = append(m.edges, memEdge{from: userID, to: id, typ: RelMakes})
	return nil
}

func (m *MemoryGraph) AllReservations(context.Context) ([]Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Node, 0)
	m.each(LabelReservation, func(id int64, n *memNode) {
		out = append(out, Node{ID: id, Labels: []string{LabelReservation}, Properties: copyProps(n.props)})
	})
	return out, nil
}

func (m *MemoryGraph) RemoveReservation(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.node(LabelReservation, id); ok {
		m.detach(id)
	}
	return nil
}

func (m *MemoryGraph) UpdateReservation(_ context.Context, id int64, duration int, date time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.node(LabelReservation, id); ok {
		n.props["duration"] = int64(duration)
		n.props["reservationDate"] = date
	}
	return nil
}

func (m *MemoryGraph) AddReview(_ context.Context, r Review) (Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = uuid.NewString()
	m.create(LabelReview, map[string]any{
		"id":      r.ID,
		"rating":  int64(r.Rating),
		"comment": r.Comment,
	})
	return r, nil
}

func (m *MemoryGraph) GiveReview(_ context.Context, userID, reviewID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, userOK := m.node(LabelUser, userID)
	_, reviewOK := m.node(LabelReview, reviewID)
	if userOK && reviewOK {
		m.edges = append(m.edges, memEdge{from: userID, to: reviewID, typ: RelGives})
	}
	return nil
}

func (m *MemoryGraph) AllReviews(context.Context) ([]Entry, error) {
	return m.entries(LabelReview, reviewAttributes), nil
}

func (m *MemoryGraph) RemoveReview(_ context.Context, id int64) error {
	return m.removeChecked(LabelReview, id)
}

func (m *MemoryGraph) UpdateReview(_ context.Context, id int64, rating int, comment string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.node(LabelReview, id)
	if !ok {
		return ErrNotFound
	}
	n.props["rating"] = int64(rating)
	n.props["comment"] = comment
	return nil
}

func (m *MemoryGraph) removeChecked(label string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.node(label, id); !ok {
		return ErrNotFound
	}
	m.detach(id)
	return nil
}

func (m *MemoryGraph) entries(label string, names []string) []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, 0)
	m.each(label, func(id int64, n *memNode) {
		out = append(out, Entry{ID: id, Attributes: attributes(names, n.props)})
	})
	return out
}

// Relationships returns the (from, to) pairs of every edge of typ.
func (m *MemoryGraph) Relationships(typ string) [][2]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out [][2]int64
	for _, e := range m.edges {
		if e.typ == typ {
			out = append(out, [2]int64{e.from, e.to})
		}
	}
	return out
}

// Count returns the number of nodes carrying label.
func (m *MemoryGraph) Count(label string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	m.each(label, func(int64, *memNode) { n++ })
	return n
}
