package taxonomy_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	// Packages
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
	taxonomy "github.com/mutablelogic/go-wpmcp/pkg/taxonomy"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// terms is an in-memory content service
type terms struct {
	sync.Mutex
	categories []schema.Term
	tags       []schema.Term
	listErr    error
	createErr  error
	lists      int
	created    []string
}

func (t *terms) ListCategories(_ context.Context, _ ...opt.Opt) ([]schema.Term, error) {
	t.Lock()
	defer t.Unlock()
	t.lists++
	return append([]schema.Term(nil), t.categories...), t.listErr
}

func (t *terms) ListTags(_ context.Context, _ ...opt.Opt) ([]schema.Term, error) {
	t.Lock()
	defer t.Unlock()
	t.lists++
	return append([]schema.Term(nil), t.tags...), t.listErr
}

func (t *terms) CreateTag(_ context.Context, req schema.TermRequest) (*schema.Term, error) {
	t.Lock()
	defer t.Unlock()
	if t.createErr != nil {
		return nil, t.createErr
	}
	t.created = append(t.created, req.Name)
	term := schema.Term{ID: uint64(100 + len(t.tags)), Name: req.Name, Taxonomy: "post_tag"}
	t.tags = append(t.tags, term)
	return &term, nil
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_resolver_001(t *testing.T) {
	// Names match existing categories case-insensitively, unknown categories are dropped
	assert := assert.New(t)
	api := &terms{categories: []schema.Term{{ID: 1, Name: "Health"}, {ID: 2, Name: "Food"}}}
	ids := taxonomy.New(api).Resolve(t.Context(), []string{"health", "Travel", "FOOD"}, schema.Category)
	assert.Equal([]uint64{1, 2}, ids)
	assert.Empty(api.created)
}

func Test_resolver_002(t *testing.T) {
	// Unknown tags are created
	assert := assert.New(t)
	api := &terms{tags: []schema.Term{{ID: 3, Name: "Coffee"}}}
	ids := taxonomy.New(api).Resolve(t.Context(), []string{"coffee", "caffeine"}, schema.Tag)
	assert.Equal([]uint64{3, 101}, ids)
	assert.Equal([]string{"caffeine"}, api.created)
}

func Test_resolver_003(t *testing.T) {
	// A tag created for an earlier name is reused for a later duplicate
	assert := assert.New(t)
	api := &terms{}
	ids := taxonomy.New(api).Resolve(t.Context(), []string{"Tea", "tea"}, schema.Tag)
	assert.Equal([]uint64{100, 100}, ids)
	assert.Equal([]string{"Tea"}, api.created)
	assert.Equal(2, api.lists)
}

func Test_resolver_004(t *testing.T) {
	// Failures drop the name and never propagate
	assert := assert.New(t)
	api := &terms{createErr: errors.New("forbidden")}
	ids := taxonomy.New(api).Resolve(t.Context(), []string{"new"}, schema.Tag)
	assert.NotNil(ids)
	assert.Empty(ids)

	api = &terms{listErr: errors.New("unreachable")}
	ids = taxonomy.New(api).Resolve(t.Context(), []string{"health"}, schema.Category)
	assert.NotNil(ids)
	assert.Empty(ids)
}

func Test_resolver_005(t *testing.T) {
	// The result is never longer than the input, and blank names are skipped
	assert := assert.New(t)
	api := &terms{categories: []schema.Term{{ID: 1, Name: "A"}}, tags: []schema.Term{{ID: 2, Name: "B"}}}
	resolver := taxonomy.New(api)
	for _, names := range [][]string{
		nil,
		{""},
		{" ", "a", "A", "b"},
		strings.Split("a,b,c,d,e", ","),
	} {
		assert.LessOrEqual(len(resolver.Resolve(t.Context(), names, schema.Category)), len(names))
		assert.LessOrEqual(len(resolver.Resolve(t.Context(), names, schema.Tag)), len(names))
	}
}

func Test_resolver_006(t *testing.T) {
	// Terms carry the service name rather than the requested name
	assert := assert.New(t)
	api := &terms{categories: []schema.Term{{ID: 1, Name: "Health"}}}
	resolved := taxonomy.New(api).ResolveTerms(t.Context(), []string{"HEALTH"}, schema.Category)
	if assert.Len(resolved, 1) {
		assert.Equal("Health", resolved[0].Name)
	}
}
