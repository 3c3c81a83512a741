package works

import (
	"bytes"
	"context"
	"maps"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"artify-server/internal/domain/works"
	"artify-server/internal/store"
)

// memRepo keeps artworks in memory with the same semantics as the Mongo store.
// Documents are copied in and out so handlers never share a map with it.
type memRepo struct {
	mu    sync.Mutex
	docs  []works.Artwork
	err   error
	calls int
}

func (m *memRepo) begin() error {
	m.mu.Lock()
	m.calls++
	return m.err
}

func (m *memRepo) Insert(_ context.Context, a works.Artwork) (store.InsertResult, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return store.InsertResult{}, err
	}
	id := a.ID()
	if id.IsZero() {
		id = bson.NewObjectID()
		a[works.FieldID] = id
	}
	m.docs = append(m.docs, maps.Clone(a))
	return store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (m *memRepo) ListPublic(_ context.Context, search string) ([]works.Artwork, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	term := strings.ToLower(search)
	contains := func(a works.Artwork, field string) bool {
		return strings.Contains(strings.ToLower(a.Text(field)), term)
	}

	out := []works.Artwork{}
	for _, a := range m.docs {
		if !a.IsPublic() {
			continue
		}
		if term == "" ||
			contains(a, works.FieldTitle) ||
			contains(a, works.FieldUserName) ||
			contains(a, works.FieldCategory) {
			out = append(out, maps.Clone(a))
		}
	}
	return out, nil
}

func (m *memRepo) Recent(_ context.Context, limit int64) ([]works.Artwork, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	out := []works.Artwork{}
	for _, a := range m.docs {
		if a.IsPublic() {
			out = append(out, maps.Clone(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].ID(), out[j].ID()
		return bytes.Compare(a[:], b[:]) > 0
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) FindByID(_ context.Context, id bson.ObjectID) (works.Artwork, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	if i := m.index(id); i >= 0 {
		return maps.Clone(m.docs[i]), nil
	}
	return nil, nil
}

func (m *memRepo) Update(_ context.Context, id bson.ObjectID, u works.ArtworkUpdate) (store.UpdateResult, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return store.UpdateResult{}, err
	}
	if i := m.index(id); i >= 0 {
		u.Apply(m.docs[i])
		return store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	a := works.Artwork{works.FieldID: id}
	u.Apply(a)
	m.docs = append(m.docs, a)
	return store.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
}

func (m *memRepo) Delete(_ context.Context, id bson.ObjectID) (store.DeleteResult, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return store.DeleteResult{}, err
	}
	if i := m.index(id); i >= 0 {
		m.docs = append(m.docs[:i], m.docs[i+1:]...)
		return store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
	}
	return store.DeleteResult{Acknowledged: true}, nil
}

func (m *memRepo) ListByOwner(_ context.Context, email string) ([]works.Artwork, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	out := []works.Artwork{}
	for _, a := range m.docs {
		if a.Text(works.FieldUserEmail) == email {
			out = append(out, maps.Clone(a))
		}
	}
	return out, nil
}

func (m *memRepo) CountByOwner(ctx context.Context, email string) (int64, error) {
	list, err := m.ListByOwner(ctx, email)
	return int64(len(list)), err
}

func (m *memRepo) Like(_ context.Context, id bson.ObjectID, liked bool) (store.UpdateResult, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return store.UpdateResult{}, err
	}
	i := m.index(id)
	if i < 0 {
		return store.UpdateResult{Acknowledged: true}, nil
	}
	delta := int64(-1)
	if liked {
		delta = 1
	}
	m.docs[i][works.FieldLikes] = m.docs[i].Likes() + delta
	return store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memRepo) index(id bson.ObjectID) int {
	for i, a := range m.docs {
		if a.ID() == id {
			return i
		}
	}
	return -1
}
