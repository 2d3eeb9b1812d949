package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// UpdateProfileRequest leaves a field unchanged when it is sent empty.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name" binding:"omitempty,min=3,max=100"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty,max=20"`
	Address  string `json:"address" form:"address" binding:"omitempty,max=500"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required"`
}

// AddCartItemRequest is what the product detail page sends on "buy now" or
// "add to cart". Values are stored as given.
type AddCartItemRequest struct {
	ProductID     int    `json:"productId"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"originalPrice"`
	IsFlashSale   bool   `json:"isFlashSale"`
	Quantity      int    `json:"quantity"`
	Size          string `json:"size"`
	Temperature   string `json:"temperature"`
	Delivery      string `json:"delivery"`
}

func (r AddCartItemRequest) ToCartItem() CartItem {
	return CartItem{
		ProductID:     r.ProductID,
		Name:          r.Name,
		Image:         r.Image,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		IsFlashSale:   r.IsFlashSale,
		Quantity:      r.Quantity,
		Size:          r.Size,
		Temperature:   r.Temperature,
		Delivery:      r.Delivery,
	}
}

type RemoteCartRequest struct {
	ProductID   int    `json:"product_id" form:"product_id" binding:"required"`
	Quantity    int    `json:"quantity" form:"quantity" binding:"required,min=1"`
	Size        string `json:"size" form:"size" binding:"omitempty,oneof=Regular Medium Large"`
	Temperature string `json:"temperature" form:"temperature" binding:"omitempty,oneof=Ice Hot"`
	Delivery    string `json:"delivery" form:"delivery"`
}

// CheckoutRequest holds the checkout form fields. Validation messages are
// produced by the checkout service, not by gin binding.
type CheckoutRequest struct {
	Email         string `json:"email" form:"email" validate:"required,looseemail"`
	FullName      string `json:"fullName" form:"fullName" validate:"required"`
	Address       string `json:"address" form:"address" validate:"required"`
	Delivery      string `json:"delivery" form:"delivery" validate:"oneof=dine-in door-delivery pick-up"`
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod" validate:"required,paymentmethod"`
}
