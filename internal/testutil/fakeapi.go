package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Route names of the fake API, used to count and inspect calls.
const (
	RouteLogin           = "login"
	RouteRegister        = "register"
	RouteListChecklists  = "listChecklists"
	RouteCreateChecklist = "createChecklist"
	RouteDeleteChecklist = "deleteChecklist"
	RouteListItems       = "listItems"
	RouteCreateItem      = "createItem"
	RouteToggleItem      = "toggleItem"
	RouteRenameItem      = "renameItem"
	RouteDeleteItem      = "deleteItem"
)

// Call is one request received by the fake API.
type Call struct {
	Route  string
	Method string
	Path   string
	Auth   string
	Body   []byte
}

type fakeItem struct {
	id        int
	name      string
	completed bool
}

type fakeChecklist struct {
	id    int
	name  string
	items []*fakeItem
}

// FakeAPI is an in-process, stateful stand-in for the remote checklist API.
// It keeps users, tokens, checklists and items in memory and records every
// request it receives.
type FakeAPI struct {
	Server *httptest.Server

	mu         sync.Mutex
	users      map[string]string // username -> password
	tokens     map[string]string // token -> username
	checklists []*fakeChecklist
	nextID     int
	calls      []Call
	failures   map[string]int
	itemField  string
}

// NewFakeAPI starts a FakeAPI that is shut down when the test completes.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{
		users:     map[string]string{},
		tokens:    map[string]string{},
		failures:  map[string]int{},
		itemField: "name",
	}
	f.Server = httptest.NewServer(f.router())
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the base URL of the fake API.
func (f *FakeAPI) URL() string {
	return f.Server.URL
}

// AddUser registers a user that can log in.
func (f *FakeAPI) AddUser(username, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[username] = password
}

// IssueToken returns a valid bearer token for username without a login call.
func (f *FakeAPI) IssueToken(username string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issueLocked(username)
}

func (f *FakeAPI) issueLocked(username string) string {
	token := uuid.NewString()
	f.tokens[token] = username
	return token
}

// SeedChecklist adds a checklist with items named by labels; a label
// prefixed with "x " is stored as completed. It returns the checklist ID.
func (f *FakeAPI) SeedChecklist(name string, labels ...string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	cl := &fakeChecklist{id: f.newID(), name: name}
	for _, l := range labels {
		it := &fakeItem{id: f.newID(), name: l}
		if rest, ok := strings.CutPrefix(l, "x "); ok {
			it.name = rest
			it.completed = true
		}
		cl.items = append(cl.items, it)
	}
	f.checklists = append(f.checklists, cl)
	return strconv.Itoa(cl.id)
}

// ItemIDs returns the item IDs of a checklist in insertion order.
func (f *FakeAPI) ItemIDs(checklistID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	cl := f.findChecklist(checklistID)
	if cl == nil {
		return nil
	}
	ids := make([]string, 0, len(cl.items))
	for _, it := range cl.items {
		ids = append(ids, strconv.Itoa(it.id))
	}
	return ids
}

// ChecklistNames returns the stored checklist names in insertion order.
func (f *FakeAPI) ChecklistNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.checklists))
	for _, cl := range f.checklists {
		names = append(names, cl.name)
	}
	return names
}

// UseItemField makes item listings report labels under field, which must be
// "name" or "itemName".
func (f *FakeAPI) UseItemField(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.itemField = field
}

// Fail makes every request to route answer with status until cleared with 0.
func (f *FakeAPI) Fail(route string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if status == 0 {
		delete(f.failures, route)
		return
	}
	f.failures[route] = status
}

// Calls returns the recorded calls, optionally restricted to one route.
func (f *FakeAPI) Calls(route string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.calls {
		if route == "" || c.Route == route {
			out = append(out, c)
		}
	}
	return out
}

// CallCount returns the number of calls to route.
func (f *FakeAPI) CallCount(route string) int {
	return len(f.Calls(route))
}

// ResetCalls forgets all recorded calls.
func (f *FakeAPI) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *FakeAPI) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(f.record)

	r.HandleFunc("/api/login", f.handleLogin).Methods("POST").Name(RouteLogin)
	r.HandleFunc("/api/register", f.handleRegister).Methods("POST").Name(RouteRegister)

	api := r.PathPrefix("/api/checklist").Subrouter()
	api.Use(f.requireToken)
	api.HandleFunc("", f.handleListChecklists).Methods("GET").Name(RouteListChecklists)
	api.HandleFunc("", f.handleCreateChecklist).Methods("POST").Name(RouteCreateChecklist)
	api.HandleFunc("/{id}", f.handleDeleteChecklist).Methods("DELETE").Name(RouteDeleteChecklist)
	api.HandleFunc("/{id}/item", f.handleListItems).Methods("GET").Name(RouteListItems)
	api.HandleFunc("/{id}/item", f.handleCreateItem).Methods("POST").Name(RouteCreateItem)
	api.HandleFunc("/{id}/item/rename/{itemId}", f.handleRenameItem).Methods("PUT").Name(RouteRenameItem)
	api.HandleFunc("/{id}/item/{itemId}", f.handleToggleItem).Methods("PUT").Name(RouteToggleItem)
	api.HandleFunc("/{id}/item/{itemId}", f.handleDeleteItem).Methods("DELETE").Name(RouteDeleteItem)
	return r
}

// record stores the call and applies injected failures.
func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		route := ""
		if cur := mux.CurrentRoute(r); cur != nil {
			route = cur.GetName()
		}

		f.mu.Lock()
		f.calls = append(f.calls, Call{
			Route:  route,
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		status := f.failures[route]
		f.mu.Unlock()

		if status != 0 {
			http.Error(w, `{"message":"injected failure"}`, status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		f.mu.Lock()
		_, valid := f.tokens[token]
		f.mu.Unlock()
		if !ok || !valid {
			http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	pw, ok := f.users[req.Username]
	if !ok || pw != req.Password {
		http.Error(w, `{"message":"invalid credentials"}`, http.StatusUnauthorized)
		return
	}
	writeData(w, http.StatusOK, map[string]string{"token": f.issueLocked(req.Username)})
}

func (f *FakeAPI) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[req.Username]; exists {
		http.Error(w, `{"message":"username taken"}`, http.StatusConflict)
		return
	}
	f.users[req.Username] = req.Password
	writeData(w, http.StatusOK, map[string]string{"username": req.Username})
}

func (f *FakeAPI) handleListChecklists(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, 0, len(f.checklists))
	for _, cl := range f.checklists {
		out = append(out, map[string]any{"id": cl.id, "name": cl.name})
	}
	writeData(w, http.StatusOK, out)
}

func (f *FakeAPI) handleCreateChecklist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cl := &fakeChecklist{id: f.newID(), name: req.Name}
	f.checklists = append(f.checklists, cl)
	writeData(w, http.StatusOK, map[string]any{"id": cl.id, "name": cl.name})
}

func (f *FakeAPI) handleDeleteChecklist(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, cl := range f.checklists {
		if strconv.Itoa(cl.id) == id {
			f.checklists = append(f.checklists[:i], f.checklists[i+1:]...)
			writeData(w, http.StatusOK, nil)
			return
		}
	}
	http.NotFound(w, r)
}

func (f *FakeAPI) handleListItems(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cl := f.findChecklist(mux.Vars(r)["id"])
	if cl == nil {
		http.NotFound(w, r)
		return
	}
	out := make([]map[string]any, 0, len(cl.items))
	for _, it := range cl.items {
		out = append(out, map[string]any{
			"id":                   it.id,
			f.itemField:            it.name,
			"itemCompletionStatus": it.completed,
		})
	}
	writeData(w, http.StatusOK, out)
}

func (f *FakeAPI) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemName string `json:"itemName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cl := f.findChecklist(mux.Vars(r)["id"])
	if cl == nil {
		http.NotFound(w, r)
		return
	}
	it := &fakeItem{id: f.newID(), name: req.ItemName}
	cl.items = append(cl.items, it)
	writeData(w, http.StatusOK, map[string]any{"id": it.id, "itemName": it.name})
}

func (f *FakeAPI) handleToggleItem(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.findItem(mux.Vars(r))
	if it == nil {
		http.NotFound(w, r)
		return
	}
	it.completed = !it.completed
	writeData(w, http.StatusOK, nil)
}

func (f *FakeAPI) handleRenameItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemName string `json:"itemName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.findItem(mux.Vars(r))
	if it == nil {
		http.NotFound(w, r)
		return
	}
	it.name = req.ItemName
	writeData(w, http.StatusOK, nil)
}

func (f *FakeAPI) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	cl := f.findChecklist(vars["id"])
	if cl == nil {
		http.NotFound(w, r)
		return
	}
	for i, it := range cl.items {
		if strconv.Itoa(it.id) == vars["itemId"] {
			cl.items = append(cl.items[:i], cl.items[i+1:]...)
			writeData(w, http.StatusOK, nil)
			return
		}
	}
	http.NotFound(w, r)
}

func (f *FakeAPI) newID() int {
	f.nextID++
	return f.nextID
}

func (f *FakeAPI) findChecklist(id string) *fakeChecklist {
	for _, cl := range f.checklists {
		if strconv.Itoa(cl.id) == id {
			return cl
		}
	}
	return nil
}

func (f *FakeAPI) findItem(vars map[string]string) *fakeItem {
	cl := f.findChecklist(vars["id"])
	if cl == nil {
		return nil
	}
	for _, it := range cl.items {
		if strconv.Itoa(it.id) == vars["itemId"] {
			return it
		}
	}
	return nil
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}
