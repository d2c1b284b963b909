package wordpress_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	// Packages
	wpmcp "github.com/mutablelogic/go-wpmcp"
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
	wordpress "github.com/mutablelogic/go-wpmcp/pkg/wordpress"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

type request struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Type   string
	Body   []byte
}

// site is a fake WordPress installation which records every request and
// replies from a table of canned responses
type site struct {
	sync.Mutex
	*httptest.Server
	requests  []request
	responses map[string]response
}

type response struct {
	status int
	body   any
}

func newSite(t *testing.T, responses map[string]response) *site {
	s := &site{responses: responses}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.Lock()
		s.requests = append(s.requests, request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			Type:   r.Header.Get("Content-Type"),
			Body:   body,
		})
		s.Unlock()

		resp, exists := s.responses[r.Method+" "+r.URL.Path]
		if !exists {
			resp = response{http.StatusNotFound, map[string]any{"code": "rest_no_route", "message": "No route was found"}}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_ = json.NewEncoder(w).Encode(resp.body)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *site) Requests() []request {
	s.Lock()
	defer s.Unlock()
	return append([]request(nil), s.requests...)
}

func newClient(t *testing.T, s *site) *wordpress.Client {
	client, err := wordpress.New(s.URL+"/", "admin", "abcd efgh ijkl")
	require.NoError(t, err)
	return client
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	// Missing configuration is rejected
	assert := assert.New(t)
	_, err := wordpress.New("", "admin", "secret")
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	_, err = wordpress.New("not a url", "admin", "secret")
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	_, err = wordpress.New("https://example.com", "", "secret")
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	_, err = wordpress.New("https://example.com", "admin", "")
	assert.ErrorIs(err, wpmcp.ErrBadParameter)

	client, err := wordpress.New("https://example.com/", "admin", "secret")
	if assert.NoError(err) {
		assert.Equal("https://example.com", client.URL())
	}
}

func Test_client_002(t *testing.T) {
	// Requests carry basic credentials under the API prefix
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"GET /wp-json/wp/v2/posts": {http.StatusOK, []schema.Post{{ID: 1, Status: "publish"}, {ID: 2, Status: "draft"}}},
	})
	posts, err := newClient(t, s).ListPosts(t.Context(), opt.WithPerPage(5), opt.WithPage(2), opt.WithStatus("any"))
	require.NoError(t, err)
	assert.Len(posts, 2)
	assert.Equal(uint64(2), posts[1].ID)

	requests := s.Requests()
	require.Len(t, requests, 1)
	assert.Equal(http.MethodGet, requests[0].Method)
	assert.Equal("Basic "+base64.StdEncoding.EncodeToString([]byte("admin:abcd efgh ijkl")), requests[0].Auth)
	assert.Contains(requests[0].Query, "per_page=5")
	assert.Contains(requests[0].Query, "page=2")
	assert.Contains(requests[0].Query, "status=any")
}

func Test_client_003(t *testing.T) {
	// Rejected credentials are distinguished from other failures
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"GET /wp-json/wp/v2/posts":      {http.StatusUnauthorized, map[string]any{"code": "rest_not_logged_in"}},
		"GET /wp-json/wp/v2/categories": {http.StatusForbidden, map[string]any{"code": "rest_forbidden"}},
		"GET /wp-json/wp/v2/tags":       {http.StatusInternalServerError, map[string]any{"code": "internal"}},
	})
	client := newClient(t, s)

	_, err := client.ListPosts(t.Context())
	assert.ErrorIs(err, wpmcp.ErrAuthenticationFailed)
	_, err = client.ListCategories(t.Context())
	assert.ErrorIs(err, wpmcp.ErrAuthenticationFailed)
	_, err = client.ListTags(t.Context())
	assert.ErrorIs(err, wpmcp.ErrRemoteRequestFailed)
	assert.Contains(err.Error(), "500")
	_, err = client.GetPost(t.Context(), 99)
	assert.ErrorIs(err, wpmcp.ErrRemoteRequestFailed)
}

func Test_client_004(t *testing.T) {
	// An unreachable site is a remote failure
	assert := assert.New(t)
	s := newSite(t, nil)
	client := newClient(t, s)
	s.Close()

	_, err := client.ListPosts(t.Context())
	assert.ErrorIs(err, wpmcp.ErrRemoteRequestFailed)
}

///////////////////////////////////////////////////////////////////////////////
// POSTS

func Test_post_001(t *testing.T) {
	// Create defaults to draft and omits empty taxonomy sets
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"POST /wp-json/wp/v2/posts": {http.StatusCreated, schema.Post{ID: 42, Status: "draft", Link: "https://example.com/?p=42", Title: schema.Rendered{Rendered: "Hi"}}},
	})
	post, err := newClient(t, s).CreatePost(t.Context(), schema.PostRequest{Title: "Hi", Content: "<p>x</p>"})
	require.NoError(t, err)
	assert.Equal(uint64(42), post.ID)
	assert.Equal("https://example.com/?p=42", post.Link)

	requests := s.Requests()
	require.Len(t, requests, 1)
	var body map[string]any
	require.NoError(t, json.Unmarshal(requests[0].Body, &body))
	assert.Equal("draft", body["status"])
	assert.Equal("Hi", body["title"])
	assert.NotContains(body, "categories")
	assert.NotContains(body, "tags")
}

func Test_post_002(t *testing.T) {
	// Update sends only the fields which are set
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"PUT /wp-json/wp/v2/posts/7": {http.StatusOK, schema.Post{ID: 7, Status: "publish"}},
	})
	client := newClient(t, s)

	_, err := client.UpdatePost(t.Context(), 7, schema.UpdatePostRequest{})
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	assert.Empty(s.Requests())

	status := "publish"
	post, err := client.UpdatePost(t.Context(), 7, schema.UpdatePostRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal("publish", post.Status)

	requests := s.Requests()
	require.Len(t, requests, 1)
	var body map[string]any
	require.NoError(t, json.Unmarshal(requests[0].Body, &body))
	assert.Equal(map[string]any{"status": "publish"}, body)
}

func Test_post_003(t *testing.T) {
	// A permanent delete returns the previous post
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"DELETE /wp-json/wp/v2/posts/7": {http.StatusOK, map[string]any{
			"deleted":  true,
			"previous": schema.Post{ID: 7, Status: "publish", Title: schema.Rendered{Rendered: "Old"}},
		}},
	})
	deleted, err := newClient(t, s).DeletePost(t.Context(), 7, opt.WithForce(true))
	require.NoError(t, err)
	assert.True(deleted.Deleted)
	assert.Equal(uint64(7), deleted.ID)
	assert.Equal("Old", deleted.Title.Rendered)

	requests := s.Requests()
	require.Len(t, requests, 1)
	assert.Equal("force=true", requests[0].Query)
}

func Test_post_004(t *testing.T) {
	// Moving to trash returns the post itself
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"DELETE /wp-json/wp/v2/posts/8": {http.StatusOK, schema.Post{ID: 8, Status: "trash"}},
	})
	deleted, err := newClient(t, s).DeletePost(t.Context(), 8, opt.WithForce(false))
	require.NoError(t, err)
	assert.False(deleted.Deleted)
	assert.Equal("trash", deleted.Status)
	assert.Equal("force=false", s.Requests()[0].Query)
}

func Test_post_005(t *testing.T) {
	// A zero identifier is rejected without a request
	assert := assert.New(t)
	s := newSite(t, nil)
	client := newClient(t, s)
	_, err := client.GetPost(t.Context(), 0)
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	_, err = client.DeletePost(t.Context(), 0)
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	assert.Empty(s.Requests())
}

///////////////////////////////////////////////////////////////////////////////
// TERMS

func Test_post_006(t *testing.T) {
	// An empty tag set is sent, and is not an empty update
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"PUT /wp-json/wp/v2/posts/7": {http.StatusOK, schema.Post{ID: 7, Status: "publish"}},
	})

	_, err := newClient(t, s).UpdatePost(t.Context(), 7, schema.UpdatePostRequest{Tags: &[]uint64{}})
	require.NoError(t, err)

	requests := s.Requests()
	require.Len(t, requests, 1)
	assert.JSONEq(`{"tags":[]}`, string(requests[0].Body))
}

func Test_term_001(t *testing.T) {
	// Listing terms passes the search term
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"GET /wp-json/wp/v2/tags": {http.StatusOK, []schema.Term{{ID: 3, Name: "Coffee"}}},
	})
	tags, err := newClient(t, s).ListTags(t.Context(), opt.WithSearch("cof"), opt.WithPerPage(1000))
	require.NoError(t, err)
	assert.Equal([]schema.Term{{ID: 3, Name: "Coffee"}}, tags)
	assert.Contains(s.Requests()[0].Query, "search=cof")
	assert.Contains(s.Requests()[0].Query, "per_page=100")
}

func Test_term_002(t *testing.T) {
	// Creating a tag requires a name
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"POST /wp-json/wp/v2/tags": {http.StatusCreated, schema.Term{ID: 9, Name: "Tea", Taxonomy: "post_tag"}},
	})
	client := newClient(t, s)

	_, err := client.CreateTag(t.Context(), schema.TermRequest{Name: "  "})
	assert.ErrorIs(err, wpmcp.ErrBadParameter)

	tag, err := client.CreateTag(t.Context(), schema.TermRequest{Name: " Tea "})
	require.NoError(t, err)
	assert.Equal(uint64(9), tag.ID)

	var body map[string]any
	require.NoError(t, json.Unmarshal(s.Requests()[0].Body, &body))
	assert.Equal("Tea", body["name"])
}

///////////////////////////////////////////////////////////////////////////////
// MEDIA

func Test_media_001(t *testing.T) {
	// Upload is multipart, and metadata is then applied explicitly
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"POST /wp-json/wp/v2/media":  {http.StatusCreated, schema.Media{ID: 5, MimeType: "image/png"}},
		"PUT /wp-json/wp/v2/media/5": {http.StatusOK, schema.Media{ID: 5, MimeType: "image/png", AltText: "A pixel"}},
	})
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	media, err := newClient(t, s).UploadMedia(t.Context(), "/tmp/pixel", strings.NewReader(string(png)), schema.MediaRequest{AltText: "A pixel"})
	require.NoError(t, err)
	assert.Equal(uint64(5), media.ID)
	assert.Equal("A pixel", media.AltText)

	requests := s.Requests()
	require.Len(t, requests, 2)
	assert.True(strings.HasPrefix(requests[0].Type, "multipart/form-data"))
	assert.Contains(string(requests[0].Body), `filename="pixel.png"`)
	assert.Equal(http.MethodPut, requests[1].Method)
}

func Test_media_002(t *testing.T) {
	// Without metadata there is a single request
	assert := assert.New(t)
	s := newSite(t, map[string]response{
		"POST /wp-json/wp/v2/media": {http.StatusCreated, schema.Media{ID: 6}},
	})
	media, err := newClient(t, s).UploadMedia(t.Context(), "notes.txt", strings.NewReader("hello"), schema.MediaRequest{})
	require.NoError(t, err)
	assert.Equal(uint64(6), media.ID)
	assert.Len(s.Requests(), 1)
	assert.Contains(string(s.Requests()[0].Body), `filename="notes.txt"`)
}

func Test_media_003(t *testing.T) {
	// Empty files are rejected without a request
	assert := assert.New(t)
	s := newSite(t, nil)
	_, err := newClient(t, s).UploadMedia(t.Context(), "empty.txt", strings.NewReader(""), schema.MediaRequest{})
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	assert.Empty(s.Requests())
}
