package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// Request модель запроса на получение временных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	ServiceID int64              // ID услуги
	VendorID  int64              // ID вендора
	Date      time.Time          // Дата, на которую запрашивались слоты
	Slots     []types.TimeString // Упорядоченный список времён начала слотов
}
