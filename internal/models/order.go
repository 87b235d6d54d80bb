package models

import "time"

// Delivery lifecycle states for an order.
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusCanceled  = "canceled"
)

// Order is a tailoring order. Sno is the business key (billbook serial
// number); ID is the storage-generated identifier.
type Order struct {
	ID             string    `json:"id"`
	Sno            string    `json:"sno"`
	Product        string    `json:"product"`
	Additional     string    `json:"additional,omitempty"`
	OrderDate      string    `json:"oDate"`
	DeliveryDate   string    `json:"dDate"`
	Telephone      string    `json:"tel"`
	ImageLink      string    `json:"link,omitempty"`
	DeliveryStatus string    `json:"deliveryStatus"`
	StaffName      string    `json:"staffName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// OrderUpdate is a partial order. Nil fields are left untouched by an
// update; set fields overwrite the stored value (shallow merge).
type OrderUpdate struct {
	Sno            *string `json:"sno,omitempty"`
	Product        *string `json:"product,omitempty"`
	Additional     *string `json:"additional,omitempty"`
	OrderDate      *string `json:"oDate,omitempty"`
	DeliveryDate   *string `json:"dDate,omitempty"`
	Telephone      *string `json:"tel,omitempty"`
	ImageLink      *string `json:"link,omitempty"`
	DeliveryStatus *string `json:"deliveryStatus,omitempty"`
	StaffName      *string `json:"staffName,omitempty"`
}

// StaffBookEntry maps a closed billbook serial range ("start-end") to the
// staff member responsible for orders in that range.
type StaffBookEntry struct {
	ID            string    `json:"id"`
	BillbookRange string    `json:"billbookRange"`
	StaffName     string    `json:"staffName"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EntryStatus records packaging completion for one garment of an order.
// Several records may exist per sno (one per garment); Sno is not a
// foreign key, so deleting the order leaves its entry statuses behind.
type EntryStatus struct {
	ID        string    `json:"id"`
	Sno       string    `json:"sno"`
	Product   string    `json:"product"`
	Package   bool      `json:"package"`
	CreatedAt time.Time `json:"createdAt"`
}
