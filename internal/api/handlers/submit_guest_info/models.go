package submit_guest_info

import "github.com/explorio/booking-service/internal/domain"

// GuestInfoRequest HTTP request model
// Телефон опционален: при пустом значении шаг верификации телефона
// пропускается
type GuestInfoRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *GuestInfoRequest) ToDomain() domain.GuestInfo {
	return domain.GuestInfo{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}
