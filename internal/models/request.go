package models

type CreateOrderRequest struct {
	Sno            string `json:"sno"`
	Product        string `json:"product"`
	Additional     string `json:"additional,omitempty"`
	OrderDate      string `json:"oDate"`
	DeliveryDate   string `json:"dDate"`
	Telephone      string `json:"tel"`
	ImageLink      string `json:"link,omitempty"`
	DeliveryStatus string `json:"deliveryStatus,omitempty"`
}

type CreateStaffBookRequest struct {
	BillbookRange string `json:"billbookRange"`
	StaffName     string `json:"staffName"`
}

type CreateEntryStatusRequest struct {
	Sno     string `json:"sno"`
	Product string `json:"product"`
	Package bool   `json:"package"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
