package request

import (
	"math"
	"reflect"
	"sync"

	"project_materials/internal/domain/entities"
	"project_materials/internal/usecase"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

func init() {
	RegisterValidators()
}

// RegisterValidators installs the custom binding rules on gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("order_status", validateOrderStatus)
			_ = v.RegisterValidation("finite", validateFinite)
		}
	})
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return entities.OrderStatus(fl.Field().String()).Valid()
}

// validateFinite rejects NaN and the infinities, which strconv and gin's
// form binding both accept.
func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// PlaceOrderRequest is read from the query string or a JSON body.
type PlaceOrderRequest struct {
	QuoteID *int `json:"quote_id" form:"quote_id" binding:"required"`
}

// UpdateOrderRequest is read from the query string or a JSON body. Both
// fields are optional.
type UpdateOrderRequest struct {
	Status     *string  `json:"status" form:"status" binding:"omitempty,order_status"`
	FinalPrice *float64 `json:"final_price" form:"final_price" binding:"omitempty,finite"`
}

func (r UpdateOrderRequest) ToUpdate() usecase.OrderUpdate {
	var upd usecase.OrderUpdate
	if r.Status != nil {
		s := entities.OrderStatus(*r.Status)
		upd.Status = &s
	}
	upd.FinalPrice = r.FinalPrice
	return upd
}
