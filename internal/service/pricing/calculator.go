package pricing

import (
	"math"

	"github.com/explorio/booking-service/internal/domain"
)

// Quote расчёт стоимости бронирования
// Значения не округлены; округление до двух знаков выполняется только
// при форматировании ответа, чтобы ошибка округления не накапливалась
// при повторных пересчётах
type Quote struct {
	BasePrice     float64
	AddOnsTotal   float64
	TotalPrice    float64
	BookingFee    float64
	PayAtProvider float64
}

// Calculator калькулятор стоимости бронирования
type Calculator struct{}

// NewCalculator создает новый калькулятор
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Quote считает полную раскладку стоимости для текущего выбора
//
// База: цена за единицу * max(1, взрослые + дети * 0.6).
// Для duration-based активностей счётчики участников равны нулю,
// так что база равна цене за единицу.
// Минимум одна оплачиваемая единица тарифицируется всегда, даже при
// нуле участников.
func (c *Calculator) Quote(activity *domain.Activity, selection *domain.BookingSelection, addOns []domain.AddOn) Quote {
	base := activity.Price * billableUnits(selection.Adults, selection.Children)
	addOnsTotal := c.addOnsTotal(selection.AddOnQuantities, addOns)

	total := base + addOnsTotal
	fee := total * domain.BookingFeeRate

	return Quote{
		BasePrice:     base,
		AddOnsTotal:   addOnsTotal,
		TotalPrice:    total,
		BookingFee:    fee,
		PayAtProvider: total - fee,
	}
}

// addOnsTotal суммирует выбранные add-on'ы по каталожным ценам
// Неизвестный id add-on'а даёт нулевой вклад
func (c *Calculator) addOnsTotal(quantities map[string]int, addOns []domain.AddOn) float64 {
	if len(quantities) == 0 {
		return 0
	}

	prices := make(map[string]float64, len(addOns))
	for _, addOn := range addOns {
		prices[addOn.ID] = addOn.Price
	}

	var total float64
	for id, qty := range quantities {
		if qty <= 0 {
			continue
		}
		total += prices[id] * float64(qty)
	}
	return total
}

// billableUnits число оплачиваемых единиц: взрослые по полной цене,
// дети с коэффициентом ChildPriceFactor, но не меньше одной единицы
func billableUnits(adults, children int) float64 {
	units := float64(adults) + float64(children)*domain.ChildPriceFactor
	return math.Max(domain.MinBillableUnits, units)
}

// Round2 округляет значение до двух знаков для отображения
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
