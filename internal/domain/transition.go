package domain

// BookingAction действие над бронированием в рамках жизненного цикла
type BookingAction string

const (
	ActionAccept   BookingAction = "accept"
	ActionReject   BookingAction = "reject"
	ActionComplete BookingAction = "complete"
	ActionCancel   BookingAction = "cancel"
)

// ActorRole роль вызывающего действие
type ActorRole string

const (
	RoleCustomer ActorRole = "customer"
	RoleVendor   ActorRole = "vendor"
	RoleAdmin    ActorRole = "admin"
)

// transitions таблица переходов статусов: статус -> действие -> новый статус.
// Переходы монотонны: ни одно ребро не возвращает бронирование в покинутый
// статус, у терминальных статусов исходящих рёбер нет.
//
// Отмена разрешена и из pending, и из accepted (см. DESIGN.md).
var transitions = map[BookingStatus]map[BookingAction]BookingStatus{
	StatusPending: {
		ActionAccept: StatusAccepted,
		ActionReject: StatusRejected,
		ActionCancel: StatusCancelled,
	},
	StatusAccepted: {
		ActionComplete: StatusCompleted,
		ActionCancel:   StatusCancelled,
	},
}

// actionRoles роль, необходимая для каждого действия.
// Админ проходит проверку владельца, но не таблицу переходов.
var actionRoles = map[BookingAction]ActorRole{
	ActionAccept:   RoleVendor,
	ActionReject:   RoleVendor,
	ActionComplete: RoleVendor,
	ActionCancel:   RoleCustomer,
}

// NextStatus возвращает статус после применения действия.
// ok = false, если переход не разрешён таблицей.
func NextStatus(current BookingStatus, action BookingAction) (BookingStatus, bool) {
	byAction, ok := transitions[current]
	if !ok {
		return "", false
	}
	next, ok := byAction[action]
	return next, ok
}

// RequiredRole возвращает роль, которой принадлежит действие
func RequiredRole(action BookingAction) (ActorRole, bool) {
	role, ok := actionRoles[action]
	return role, ok
}

// ParseAction валидирует и конвертирует строку в BookingAction
func ParseAction(s string) (BookingAction, bool) {
	switch BookingAction(s) {
	case ActionAccept, ActionReject, ActionComplete, ActionCancel:
		return BookingAction(s), true
	default:
		return "", false
	}
}

// ParseRole валидирует и конвертирует строку в ActorRole
func ParseRole(s string) (ActorRole, bool) {
	switch ActorRole(s) {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return ActorRole(s), true
	default:
		return "", false
	}
}

// EventForAction имя события для нотификации по действию
func EventForAction(action BookingAction) string {
	switch action {
	case ActionAccept:
		return "booking.accepted"
	case ActionReject:
		return "booking.rejected"
	case ActionComplete:
		return "booking.completed"
	case ActionCancel:
		return "booking.cancelled"
	default:
		return "booking.changed"
	}
}
