package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/alexanderramin/checklist/internal/notify"
	"github.com/alexanderramin/checklist/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(lists []domain.Checklist) []string {
	out := make([]string, 0, len(lists))
	for _, cl := range lists {
		out = append(out, cl.Name)
	}
	return out
}

func requireToast(t *testing.T, d *TestDriver, level notify.Level, key notify.Key) {
	t.Helper()
	toast := d.Toast()
	require.NotNil(t, toast, "expected a %s toast for %s", level, key)
	assert.Equal(t, level, toast.Level)
	assert.Equal(t, key, toast.Key)
}

// ── Route guards ─────────────────────────────────────────────────────────────

func TestTUI_PrivateRoutesWithoutSessionLandOnLogin(t *testing.T) {
	for _, path := range []string{"/dashboard", "/checklist/1"} {
		t.Run(path, func(t *testing.T) {
			env := newTestEnv(t, "")
			d := NewTestDriver(t, env.app, path)

			assert.Equal(t, ViewLogin, d.ActiveViewID())
			assert.Equal(t, RouteLogin, d.Route().Name)
			requireToast(t, d, notify.Error, notify.SessionRequired)
			assert.Empty(t, env.fake.Calls(""), "no request may be issued")
		})
	}
}

func TestTUI_PublicRoutesWithSessionLandOnDashboard(t *testing.T) {
	for _, path := range []string{"/login", "/register"} {
		t.Run(path, func(t *testing.T) {
			env := newTestEnv(t, "alice")
			d := NewTestDriver(t, env.app, path)

			assert.Equal(t, ViewDashboard, d.ActiveViewID())
			assert.Nil(t, d.Toast())
		})
	}
}

func TestTUI_UnknownRouteFallsBackToLogin(t *testing.T) {
	env := newTestEnv(t, "")
	d := NewTestDriver(t, env.app, "/nowhere")

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	assert.Nil(t, d.Toast())
}

// ── Login and register ───────────────────────────────────────────────────────

func TestTUI_LoginRejectedKeepsFormAndStore(t *testing.T) {
	env := newTestEnv(t, "")
	env.fake.AddUser("alice", "secret")
	d := NewTestDriver(t, env.app, "/login")

	d.Type("alice")
	d.PressTab()
	d.Type("wrong")
	d.PressEnter()

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	requireToast(t, d, notify.Error, notify.LoginFailed)
	assert.False(t, env.sessions.Current().Active())

	login := d.appModel().active.(*loginView)
	assert.Equal(t, "alice", login.fields.value(0))
	assert.Equal(t, "wrong", login.fields.value(1))
	assert.Equal(t, 0, env.fake.CallCount(testutil.RouteListChecklists))
}

func TestTUI_LoginSuccessOpensDashboard(t *testing.T) {
	env := newTestEnv(t, "")
	env.fake.AddUser("alice", "secret")
	env.fake.SeedChecklist("Groceries", "milk")
	d := NewTestDriver(t, env.app, "/login")

	d.Type("alice")
	d.PressEnter() // next field
	d.Type("secret")
	d.PressEnter()

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	requireToast(t, d, notify.Success, notify.LoginSuccess)
	assert.True(t, env.sessions.Current().Active())
	assert.Equal(t, []string{"Groceries"}, names(d.dashboard().lists))
}

func TestTUI_LoginSendsUsernameAsTyped(t *testing.T) {
	env := newTestEnv(t, "")
	env.fake.AddUser("alice", "secret")
	d := NewTestDriver(t, env.app, "/login")

	d.Type(" alice")
	d.PressEnter()
	d.Type("secret")
	d.PressEnter()

	logins := env.fake.Calls(testutil.RouteLogin)
	require.Len(t, logins, 1)
	assert.JSONEq(t, `{"username":" alice","password":"secret"}`, string(logins[0].Body))
	assert.Equal(t, ViewLogin, d.ActiveViewID())
	assert.False(t, env.sessions.Current().Active())
}

func TestTUI_LoginTypingQDoesNotQuit(t *testing.T) {
	env := newTestEnv(t, "")
	d := NewTestDriver(t, env.app, "/login")

	d.Type("quinn")

	assert.False(t, d.IsQuitting())
	assert.Equal(t, "quinn", d.appModel().active.(*loginView).fields.value(0))
}

func TestTUI_LoginAndRegisterLinkToEachOther(t *testing.T) {
	env := newTestEnv(t, "")
	d := NewTestDriver(t, env.app, "/login")

	d.PressType(tea.KeyCtrlR)
	assert.Equal(t, ViewRegister, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewLogin, d.ActiveViewID())
}

func TestTUI_RegisterSuccessReturnsToLogin(t *testing.T) {
	env := newTestEnv(t, "")
	d := NewTestDriver(t, env.app, "/register")

	d.Type("bob@example.com")
	d.PressTab()
	d.Type("bob")
	d.PressTab()
	d.Type("hunter2")
	d.PressEnter()

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	requireToast(t, d, notify.Success, notify.RegisterSuccess)
	assert.False(t, env.sessions.Current().Active())
	require.Len(t, env.fake.Calls(testutil.RouteRegister), 1)
	assert.JSONEq(t,
		`{"email":"bob@example.com","username":"bob","password":"hunter2"}`,
		string(env.fake.Calls(testutil.RouteRegister)[0].Body))
}

func TestTUI_RegisterFailureStays(t *testing.T) {
	env := newTestEnv(t, "")
	env.fake.Fail(testutil.RouteRegister, 400)
	d := NewTestDriver(t, env.app, "/register")

	d.Type("bob@example.com")
	d.PressTab()
	d.Type("bob")
	d.PressTab()
	d.Type("hunter2")
	d.PressEnter()

	assert.Equal(t, ViewRegister, d.ActiveViewID())
	requireToast(t, d, notify.Error, notify.RegisterFailed)
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func TestTUI_DashboardMountFetchesListOnceAndItemsPerChecklist(t *testing.T) {
	env := newTestEnv(t, "alice")
	env.fake.SeedChecklist("Road Trip", "tent", "x map")
	env.fake.SeedChecklist("Groceries")
	env.fake.SeedChecklist("Packing", "socks")

	d := NewTestDriver(t, env.app, "/dashboard")

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, env.fake.CallCount(testutil.RouteListChecklists))
	assert.Equal(t, 3, env.fake.CallCount(testutil.RouteListItems))
}

func TestTUI_DashboardShowsProgress(t *testing.T) {
	env := newTestEnv(t, "alice")
	quarter := env.fake.SeedChecklist("Quarter", "x a", "b", "c", "d")
	empty := env.fake.SeedChecklist("Empty")

	d := NewTestDriver(t, env.app, "/dashboard")

	dash := d.dashboard()
	assert.Equal(t, 25, dash.progress.Of(quarter))
	assert.Equal(t, 0, dash.progress.Of(empty))
	assert.Contains(t, d.View(), "25%")
	assert.Contains(t, d.View(), "Quarter")
}

func TestTUI_DashboardProgressFailureReadsZeroWithoutToast(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Quarter", "x a", "b")
	env.fake.Fail(testutil.RouteListItems, 500)

	d := NewTestDriver(t, env.app, "/dashboard")

	assert.Equal(t, 0, d.dashboard().progress.Of(id))
	assert.Nil(t, d.Toast())
}

func TestTUI_DashboardLoadFailureShowsError(t *testing.T) {
	env := newTestEnv(t, "alice")
	env.fake.Fail(testutil.RouteListChecklists, 500)

	d := NewTestDriver(t, env.app, "/dashboard")

	requireToast(t, d, notify.Error, notify.ChecklistLoadFailed)
	assert.Equal(t, 0, env.fake.CallCount(testutil.RouteListItems))
}

func TestTUI_CreateChecklistBlankWarnsWithoutRequest(t *testing.T) {
	env := newTestEnv(t, "alice")
	d := NewTestDriver(t, env.app, "/dashboard")

	d.PressKey('n')
	d.Type("   ")
	d.PressEnter()

	requireToast(t, d, notify.Warning, notify.ChecklistBlankName)
	assert.Equal(t, 0, env.fake.CallCount(testutil.RouteCreateChecklist))
}

func TestTUI_CreateChecklistClearsInputAndReloads(t *testing.T) {
	env := newTestEnv(t, "alice")
	d := NewTestDriver(t, env.app, "/dashboard")

	d.PressKey('n')
	d.Type("Road Trip")
	d.PressEnter()

	requireToast(t, d, notify.Success, notify.ChecklistCreated)
	assert.Equal(t, []string{"Road Trip"}, env.fake.ChecklistNames())
	assert.Equal(t, 2, env.fake.CallCount(testutil.RouteListChecklists))

	dash := d.dashboard()
	assert.Equal(t, []string{"Road Trip"}, names(dash.lists))
	assert.Empty(t, dash.create.Value())
	assert.Equal(t, dashBrowse, dash.mode)
}

func TestTUI_CreateChecklistFailureKeepsInput(t *testing.T) {
	env := newTestEnv(t, "alice")
	env.fake.Fail(testutil.RouteCreateChecklist, 500)
	d := NewTestDriver(t, env.app, "/dashboard")

	d.PressKey('n')
	d.Type("Groceries")
	d.PressEnter()

	requireToast(t, d, notify.Error, notify.ChecklistCreateFailed)
	assert.Equal(t, "Groceries", d.dashboard().create.Value())
	assert.Equal(t, 1, env.fake.CallCount(testutil.RouteListChecklists))
	assert.False(t, d.dashboard().submitting, "a failed create can be retried")
}

func TestTUI_CreateChecklistIgnoresEnterWhileInFlight(t *testing.T) {
	env := newTestEnv(t, "alice")
	d := NewTestDriver(t, env.app, "/dashboard")
	d.PressKey('n')
	d.Type("Road Trip")

	dash := d.dashboard()
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	_, first := dash.Update(enter)
	_, second := dash.Update(enter)
	require.NotNil(t, first)
	assert.Nil(t, second, "enter is ignored until the create returns")

	d.Exec(first)

	assert.Equal(t, 1, env.fake.CallCount(testutil.RouteCreateChecklist))
	assert.Equal(t, []string{"Road Trip"}, env.fake.ChecklistNames())
	assert.False(t, d.dashboard().submitting)
}

func TestTUI_DeleteChecklistReloads(t *testing.T) {
	env := newTestEnv(t, "alice")
	env.fake.SeedChecklist("Apple")
	env.fake.SeedChecklist("Banana")
	d := NewTestDriver(t, env.app, "/dashboard")

	d.PressKey('d')

	requireToast(t, d, notify.Success, notify.ChecklistDeleted)
	assert.Equal(t, []string{"Banana"}, env.fake.ChecklistNames())
	assert.Equal(t, []string{"Banana"}, names(d.dashboard().lists))
	assert.Equal(t, 2, env.fake.CallCount(testutil.RouteListChecklists))
}

func TestTUI_SearchFiltersWithoutRefetch(t *testing.T) {
	env := newTestEnv(t, "alice")
	env.fake.SeedChecklist("Road Trip")
	env.fake.SeedChecklist("Groceries")
	env.fake.SeedChecklist("trip plan")
	d := NewTestDriver(t, env.app, "/dashboard")

	d.PressKey('/')
	d.Type("TRIP")
	d.PressEnter()

	dash := d.dashboard()
	assert.Equal(t, []string{"Road Trip", "trip plan"}, names(dash.visible()))
	assert.Len(t, dash.lists, 3)
	assert.Equal(t, 1, env.fake.CallCount(testutil.RouteListChecklists))

	d.PressKey('/')
	d.PressEsc()
	assert.Len(t, d.dashboard().visible(), 3)
}

func TestTUI_SortToggle(t *testing.T) {
	env := newTestEnv(t, "alice")
	env.fake.SeedChecklist("banana")
	env.fake.SeedChecklist("Apple")
	env.fake.SeedChecklist("cherry")
	d := NewTestDriver(t, env.app, "/dashboard")

	assert.Equal(t, []string{"Apple", "banana", "cherry"}, names(d.dashboard().visible()))

	d.PressKey('s')
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, names(d.dashboard().visible()))
	assert.Equal(t, []string{"banana", "Apple", "cherry"}, names(d.dashboard().lists))
}

func TestTUI_OpenChecklistFromDashboard(t *testing.T) {
	env := newTestEnv(t, "alice")
	env.fake.SeedChecklist("banana", "peel")
	apple := env.fake.SeedChecklist("Apple", "core", "x stem")
	d := NewTestDriver(t, env.app, "/dashboard")

	dash := d.dashboard()
	d.PressEnter()

	assert.Equal(t, ViewChecklist, d.ActiveViewID())
	assert.Equal(t, Route{Name: RouteChecklist, ChecklistID: apple}, d.Route())
	assert.Len(t, d.checklist().items, 2)
	assert.ErrorIs(t, dash.ctx.Err(), context.Canceled, "leaving a view cancels its loads")
}

func TestTUI_StaleDashboardLoadIsDropped(t *testing.T) {
	env := newTestEnv(t, "alice")
	env.fake.SeedChecklist("Groceries")
	d := NewTestDriver(t, env.app, "/dashboard")

	d.Send(checklistsLoadedMsg{gen: "superseded", lists: []domain.Checklist{{ID: "99", Name: "Ghost"}}})
	d.Send(progressLoadedMsg{gen: "superseded", progress: domain.ProgressMap{"99": 100}})

	dash := d.dashboard()
	assert.Equal(t, []string{"Groceries"}, names(dash.lists))
	assert.Equal(t, 0, dash.progress.Of("99"))
}

func TestTUI_LogoutEndsSession(t *testing.T) {
	env := newTestEnv(t, "alice")
	d := NewTestDriver(t, env.app, "/dashboard")

	d.PressKey('L')

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	requireToast(t, d, notify.Success, notify.LogoutSuccess)
	assert.False(t, env.sessions.Current().Active())
}

func TestTUI_QuitFromDashboard(t *testing.T) {
	env := newTestEnv(t, "alice")
	d := NewTestDriver(t, env.app, "/dashboard")

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

// ── Checklist detail ─────────────────────────────────────────────────────────

func TestTUI_ChecklistShowsCountsAndPlaceholder(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Trip", "x tent", "", "map")
	d := NewTestDriver(t, env.app, "/checklist/"+id)

	view := d.View()
	assert.Contains(t, view, "1 done")
	assert.Contains(t, view, "2 to go")
	assert.Contains(t, view, "(no name)")
	assert.Contains(t, view, "tent")
}

func TestTUI_ToggleSendsEmptyPutThenOneRefetch(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Trip", "tent", "map")
	d := NewTestDriver(t, env.app, "/checklist/"+id)
	env.fake.ResetCalls()

	d.PressSpace()

	toggles := env.fake.Calls(testutil.RouteToggleItem)
	require.Len(t, toggles, 1)
	assert.Equal(t, "PUT", toggles[0].Method)
	assert.Empty(t, toggles[0].Body)
	assert.Equal(t, 1, env.fake.CallCount(testutil.RouteListItems))
	assert.True(t, d.checklist().items[0].Completed)
	assert.Nil(t, d.Toast(), "a successful toggle is silent")
}

func TestTUI_ToggleFailureShowsError(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Trip", "tent")
	env.fake.Fail(testutil.RouteToggleItem, 500)
	d := NewTestDriver(t, env.app, "/checklist/"+id)
	env.fake.ResetCalls()

	d.PressSpace()

	requireToast(t, d, notify.Error, notify.ItemToggleFailed)
	assert.Equal(t, 0, env.fake.CallCount(testutil.RouteListItems))
	assert.False(t, d.checklist().items[0].Completed)
}

func TestTUI_AddItemClearsInputAndRefetches(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Groceries", "bread")
	d := NewTestDriver(t, env.app, "/checklist/"+id)
	env.fake.ResetCalls()

	d.PressKey('a')
	d.Type("oat milk")
	d.PressEnter()

	requireToast(t, d, notify.Success, notify.ItemCreated)
	require.Len(t, env.fake.Calls(testutil.RouteCreateItem), 1)
	assert.JSONEq(t, `{"itemName":"oat milk"}`, string(env.fake.Calls(testutil.RouteCreateItem)[0].Body))
	assert.Equal(t, 1, env.fake.CallCount(testutil.RouteListItems))

	cl := d.checklist()
	assert.Empty(t, cl.add.Value())
	require.Len(t, cl.items, 2)
	assert.Equal(t, "oat milk", cl.items[1].DisplayName())
}

func TestTUI_AddItemIgnoresEnterWhileInFlight(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Groceries")
	d := NewTestDriver(t, env.app, "/checklist/"+id)
	d.PressKey('a')
	d.Type("milk")

	cl := d.checklist()
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	_, first := cl.Update(enter)
	_, second := cl.Update(enter)
	require.NotNil(t, first)
	assert.Nil(t, second, "enter is ignored until the add returns")

	d.Exec(first)

	assert.Equal(t, 1, env.fake.CallCount(testutil.RouteCreateItem))
	assert.Len(t, env.fake.ItemIDs(id), 1)

	d.Type("eggs")
	d.PressEnter()
	assert.Equal(t, 2, env.fake.CallCount(testutil.RouteCreateItem), "the next add goes through")
}

func TestTUI_RenameItemIgnoresEnterWhileInFlight(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Groceries", "bread")
	d := NewTestDriver(t, env.app, "/checklist/"+id)
	d.PressKey('e')
	d.PressType(tea.KeyCtrlU)
	d.Type("rye bread")

	cl := d.checklist()
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	_, first := cl.Update(enter)
	_, second := cl.Update(enter)
	require.NotNil(t, first)
	assert.Nil(t, second, "enter is ignored until the rename returns")

	d.Exec(first)

	assert.Equal(t, 1, env.fake.CallCount(testutil.RouteRenameItem))
	assert.Equal(t, itemsBrowse, d.checklist().mode)
	assert.False(t, d.checklist().submitting)
}

func TestTUI_AddItemBlankWarnsWithoutRequest(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Groceries")
	d := NewTestDriver(t, env.app, "/checklist/"+id)

	d.PressKey('a')
	d.Type("  ")
	d.PressEnter()

	requireToast(t, d, notify.Warning, notify.ItemBlankName)
	assert.Equal(t, 0, env.fake.CallCount(testutil.RouteCreateItem))
}

func TestTUI_RenameItem(t *testing.T) {
	env := newTestEnv(t, "alice")
	env.fake.UseItemField("itemName")
	id := env.fake.SeedChecklist("Groceries", "bread")
	d := NewTestDriver(t, env.app, "/checklist/"+id)

	d.PressKey('e')
	cl := d.checklist()
	assert.Equal(t, itemsRenaming, cl.mode)
	assert.Equal(t, "bread", cl.edit.Value(), "the editor starts from the current name")

	d.PressType(tea.KeyCtrlU)
	d.Type("rye bread")
	d.PressEnter()

	renames := env.fake.Calls(testutil.RouteRenameItem)
	require.Len(t, renames, 1)
	assert.JSONEq(t, `{"itemName":"rye bread"}`, string(renames[0].Body))
	requireToast(t, d, notify.Success, notify.ItemRenamed)

	cl = d.checklist()
	assert.Equal(t, itemsBrowse, cl.mode)
	assert.Equal(t, "rye bread", cl.items[0].EditName())
}

func TestTUI_RenameItemBlankWarnsAndStaysInEditMode(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Groceries", "bread")
	d := NewTestDriver(t, env.app, "/checklist/"+id)

	d.PressKey('e')
	d.PressType(tea.KeyCtrlU)
	d.PressEnter()

	requireToast(t, d, notify.Warning, notify.ItemBlankName)
	assert.Equal(t, 0, env.fake.CallCount(testutil.RouteRenameItem))
	assert.Equal(t, itemsRenaming, d.checklist().mode)
}

func TestTUI_RenameItemCancelIssuesNoRequest(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Groceries", "bread")
	d := NewTestDriver(t, env.app, "/checklist/"+id)

	d.PressKey('e')
	d.Type("xyz")
	d.PressEsc()

	assert.Equal(t, ViewChecklist, d.ActiveViewID())
	assert.Equal(t, itemsBrowse, d.checklist().mode)
	assert.Equal(t, 0, env.fake.CallCount(testutil.RouteRenameItem))
}

func TestTUI_DeleteItemRefetches(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Groceries", "bread", "milk")
	d := NewTestDriver(t, env.app, "/checklist/"+id)

	d.PressDown()
	d.PressKey('d')

	requireToast(t, d, notify.Success, notify.ItemDeleted)
	require.Len(t, d.checklist().items, 1)
	assert.Equal(t, "bread", d.checklist().items[0].DisplayName())
}

func TestTUI_ChecklistLoadFailureShowsError(t *testing.T) {
	env := newTestEnv(t, "alice")
	d := NewTestDriver(t, env.app, "/checklist/404")

	requireToast(t, d, notify.Error, notify.ItemLoadFailed)
}

func TestTUI_BackToDashboard(t *testing.T) {
	env := newTestEnv(t, "alice")
	id := env.fake.SeedChecklist("Groceries")
	d := NewTestDriver(t, env.app, "/checklist/"+id)

	d.PressEsc()

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, []string{"Groceries"}, names(d.dashboard().lists))
}

// ── Toasts ───────────────────────────────────────────────────────────────────

func TestTUI_ToastExpires(t *testing.T) {
	env := newTestEnv(t, "")
	env.app.ToastTTL = 10 * time.Millisecond
	d := NewTestDriver(t, env.app, "/dashboard")

	assert.Nil(t, d.Toast())
	assert.Equal(t, 1, d.CountProcessed(toastExpiredMsg{}))
}

func TestTUI_StaleToastExpiryKeepsNewerToast(t *testing.T) {
	env := newTestEnv(t, "")
	d := NewTestDriver(t, env.app, "/dashboard")
	require.NotNil(t, d.Toast())

	d.Send(toastExpiredMsg{seq: 0})

	requireToast(t, d, notify.Error, notify.SessionRequired)
}
