package catalogservice

// Service модель услуги из каталога маркетплейса
type Service struct {
	ID       int64   `json:"id"`
	VendorID int64   `json:"vendor_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Active   bool    `json:"active"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
