package service_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/service"
	"rajmahal-backend/internal/sheets"
	"rajmahal-backend/internal/snapshot"
	"rajmahal-backend/internal/store"
)

func validOrderRequest(sno string) models.CreateOrderRequest {
	return models.CreateOrderRequest{
		Sno:          sno,
		Product:      "sherwani",
		OrderDate:    "2024-03-01",
		DeliveryDate: "2024-03-10",
		Telephone:    "9876543210",
	}
}

func TestCreateOrderAssignsStaffFromBillbookRange(t *testing.T) {
	st := store.NewMemoryStore()
	staffBook := service.NewStaffBook(st)
	orders := service.NewOrders(st)

	_, err := staffBook.Create(models.CreateStaffBookRequest{BillbookRange: "301-350", StaffName: "Amit"})
	require.NoError(t, err)

	order, err := orders.Create(validOrderRequest("325"))
	require.NoError(t, err)

	assert.Equal(t, "Amit", order.StaffName)
	assert.Equal(t, models.DeliveryStatusPending, order.DeliveryStatus)
	assert.NotEmpty(t, order.ID)
}

func TestCreateOrderOutsideAllRangesIsUnassigned(t *testing.T) {
	st := store.NewMemoryStore()
	orders := service.NewOrders(st)

	order, err := orders.Create(validOrderRequest("999"))
	require.NoError(t, err)
	assert.Empty(t, order.StaffName)
}

func TestCreateOrderValidation(t *testing.T) {
	st := store.NewMemoryStore()
	orders := service.NewOrders(st)

	missing := validOrderRequest("101")
	missing.Telephone = ""
	_, err := orders.Create(missing)
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reason, "tel")

	nonNumeric := validOrderRequest("10a")
	_, err = orders.Create(nonNumeric)
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reason, "digits")

	stored, err := st.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestStaffBookEditsDoNotReassignExistingOrders(t *testing.T) {
	st := store.NewMemoryStore()
	staffBook := service.NewStaffBook(st)
	orders := service.NewOrders(st)

	_, err := staffBook.Create(models.CreateStaffBookRequest{BillbookRange: "100-200", StaffName: "Amit"})
	require.NoError(t, err)

	order, err := orders.Create(validOrderRequest("150"))
	require.NoError(t, err)
	require.Equal(t, "Amit", order.StaffName)

	require.NoError(t, staffBook.Delete("100-200"))
	_, err = staffBook.Create(models.CreateStaffBookRequest{BillbookRange: "100-200", StaffName: "Ravi"})
	require.NoError(t, err)

	got, err := orders.Get("150")
	require.NoError(t, err)
	assert.Equal(t, "Amit", got.StaffName)
}

func TestStaffBookRangeValidation(t *testing.T) {
	st := store.NewMemoryStore()
	staffBook := service.NewStaffBook(st)

	var ve *service.ValidationError

	_, err := staffBook.Create(models.CreateStaffBookRequest{BillbookRange: "abc", StaffName: "Amit"})
	assert.ErrorAs(t, err, &ve)

	_, err = staffBook.Create(models.CreateStaffBookRequest{BillbookRange: "350-301", StaffName: "Amit"})
	assert.ErrorAs(t, err, &ve)

	_, err = staffBook.Create(models.CreateStaffBookRequest{BillbookRange: "301-350", StaffName: ""})
	assert.ErrorAs(t, err, &ve)
}

func TestAddEntryStatusRequiresExistingOrder(t *testing.T) {
	st := store.NewMemoryStore()
	entryStatuses := service.NewEntryStatuses(st)

	_, err := entryStatuses.Add(models.CreateEntryStatusRequest{Sno: "101", Product: "sherwani"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := entryStatuses.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteOrderLeavesEntryStatuses(t *testing.T) {
	st := store.NewMemoryStore()
	orders := service.NewOrders(st)
	entryStatuses := service.NewEntryStatuses(st)

	_, err := orders.Create(validOrderRequest("101"))
	require.NoError(t, err)

	_, err = entryStatuses.Add(models.CreateEntryStatusRequest{Sno: "101", Product: "sherwani", Package: true})
	require.NoError(t, err)
	_, err = entryStatuses.Add(models.CreateEntryStatusRequest{Sno: "101", Product: "jodhpuri"})
	require.NoError(t, err)

	require.NoError(t, orders.Delete("101"))

	_, err = orders.Get("101")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Orphaned records stay queryable.
	remaining, err := entryStatuses.ListBySno("101")
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestSyncAllNotConfigured(t *testing.T) {
	st := store.NewMemoryStore()
	sync := service.NewSync(st, nil, nil)

	_, err := sync.SyncAll()
	assert.ErrorIs(t, err, service.ErrSyncNotConfigured)

	status := sync.Status()
	assert.False(t, status.Configured)
}

func TestSyncAllPushesSnapshot(t *testing.T) {
	st := store.NewMemoryStore()
	orders := service.NewOrders(st)
	_, err := orders.Create(validOrderRequest("101"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","message":"synced","recordCount":{"orders":1}}`))
	}))
	defer srv.Close()

	sync := service.NewSync(st, sheets.NewClient(srv.URL), nil)

	result, err := sync.SyncAll()
	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, 1, result.RecordCount.Orders)

	status := sync.Status()
	assert.True(t, status.Configured)
	assert.False(t, status.LastChecked.IsZero())
}

func TestSyncAllSurfacesTransportFailure(t *testing.T) {
	st := store.NewMemoryStore()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	sync := service.NewSync(st, sheets.NewClient(srv.URL), nil)

	_, err := sync.SyncAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to sync")
}

func TestSyncFailureWritesLocalSnapshot(t *testing.T) {
	st := store.NewMemoryStore()
	orders := service.NewOrders(st)
	staffBook := service.NewStaffBook(st)
	entryStatuses := service.NewEntryStatuses(st)

	_, err := staffBook.Create(models.CreateStaffBookRequest{BillbookRange: "100-200", StaffName: "Amit"})
	require.NoError(t, err)
	_, err = orders.Create(validOrderRequest("150"))
	require.NoError(t, err)
	_, err = entryStatuses.Add(models.CreateEntryStatusRequest{Sno: "150", Product: "sherwani", Package: true})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	snaps, err := snapshot.Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)

	sync := service.NewSync(st, sheets.NewClient(srv.URL), snaps)

	_, err = sync.SyncAll()
	require.Error(t, err)

	// The unreachable webhook degrades to a full local copy of all
	// three collections.
	var savedOrders []models.Order
	require.NoError(t, snaps.Load(snapshot.SlotOrders, &savedOrders))
	require.Len(t, savedOrders, 1)
	assert.Equal(t, "150", savedOrders[0].Sno)

	var savedStaffBook []models.StaffBookEntry
	require.NoError(t, snaps.Load(snapshot.SlotStaffBook, &savedStaffBook))
	require.Len(t, savedStaffBook, 1)
	assert.Equal(t, "Amit", savedStaffBook[0].StaffName)

	var savedEntries []models.EntryStatus
	require.NoError(t, snaps.Load(snapshot.SlotEntryStatuses, &savedEntries))
	require.Len(t, savedEntries, 1)
	assert.True(t, savedEntries[0].Package)
}
