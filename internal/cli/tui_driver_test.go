package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/alexanderramin/checklist/internal/api"
	"github.com/alexanderramin/checklist/internal/listing"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/alexanderramin/checklist/internal/repository"
	"github.com/alexanderramin/checklist/internal/service"
	"github.com/alexanderramin/checklist/internal/session"
	"github.com/alexanderramin/checklist/internal/teatest"
	"github.com/alexanderramin/checklist/internal/testutil"
	"golang.org/x/text/language"
)

// testEnv is a fully wired App talking to an in-process fake API.
type testEnv struct {
	app      *App
	fake     *testutil.FakeAPI
	sessions *session.Manager
}

// newTestEnv wires an App against a fresh fake API. A non-empty user is
// logged in before the App is built.
func newTestEnv(t *testing.T, user string) *testEnv {
	t.Helper()
	fake := testutil.NewFakeAPI(t)
	token := ""
	if user != "" {
		fake.AddUser(user, "secret")
		token = fake.IssueToken(user)
	}
	sessions := testutil.NewTestSession(t, token)

	client := api.NewHTTPClient(api.Config{BaseURL: fake.URL(), Timeout: time.Second}, nil)
	checklistRepo := repository.NewRemoteChecklistRepo(client, sessions)
	itemRepo := repository.NewRemoteItemRepo(client, sessions)
	progress := service.NewProgressService(itemRepo, service.DefaultProgressWorkers)

	app := &App{
		Auth:         service.NewAuthService(client, sessions),
		Checklists:   service.NewChecklistService(checklistRepo, progress),
		Items:        service.NewItemService(itemRepo),
		Progress:     progress,
		Session:      sessions,
		Catalog:      notify.NewCatalog("en"),
		Sorter:       listing.NewSorter(language.English),
		APIURL:       fake.URL(),
		StaticCursor: true,
	}
	return &testEnv{app: app, fake: fake, sessions: sessions}
}

// executeCmd runs a cobra command and captures stdout and stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// TestDriver wraps teatest.Driver with router-aware inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel at path, sets the terminal size and
// drains Init, which runs the first load against the fake API.
func NewTestDriver(t *testing.T, app *App, path string) *TestDriver {
	t.Helper()
	m := newAppModel(app, ParseRoute(path))
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the mounted view.
func (d *TestDriver) ActiveViewID() ViewID {
	return d.appModel().active.ID()
}

// Route returns the current route.
func (d *TestDriver) Route() Route {
	return d.appModel().route
}

// Toast returns the visible notification, or nil.
func (d *TestDriver) Toast() *notify.Notification {
	return d.appModel().toast
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

func (d *TestDriver) dashboard() *dashboardView {
	d.T.Helper()
	v, ok := d.appModel().active.(*dashboardView)
	if !ok {
		d.T.Fatalf("active view is %T, not the dashboard", d.appModel().active)
	}
	return v
}

func (d *TestDriver) checklist() *checklistView {
	d.T.Helper()
	v, ok := d.appModel().active.(*checklistView)
	if !ok {
		d.T.Fatalf("active view is %T, not a checklist", d.appModel().active)
	}
	return v
}
