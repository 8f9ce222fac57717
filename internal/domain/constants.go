package domain

// Pricing constants
const (
	// BookingFeeRate доля от общей суммы, удерживаемая платформой
	BookingFeeRate = 0.10

	// ChildPriceFactor коэффициент цены за ребёнка относительно взрослого
	ChildPriceFactor = 0.6

	// MinBillableUnits минимальное число оплачиваемых единиц
	// Даже при нуле участников бронирование тарифицируется как одна единица
	MinBillableUnits = 1.0
)

// Verification constants
const (
	// CodeLength число цифр в коде подтверждения
	CodeLength = 6
)

// Booking ID constants
const (
	// BookingIDPrefix префикс идентификатора бронирования
	BookingIDPrefix = "BK"

	// BookingIDSuffixLength число цифр временной метки в идентификаторе
	BookingIDSuffixLength = 10
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Provider opening hours
const (
	// HoursClosed значение-метка для выходного дня в расписании провайдера
	HoursClosed = "Closed"
)
