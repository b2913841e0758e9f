package api

import (
	"time"

	"dhatucraft-be/internal/category"
	"dhatucraft-be/internal/order"
	"dhatucraft-be/internal/product"
	"dhatucraft-be/internal/promo"
	"dhatucraft-be/internal/user"
)

// ---------- auth ----------

type registerRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

type userResponse struct {
	ID    uint    `json:"id"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Role  string  `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func mapUser(u user.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
}

// ---------- catalog ----------

type productResponse struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	DiscountPrice *int64   `json:"discountPrice,omitempty"`
	Stock         int      `json:"stock"`
	Description   string   `json:"description"`
	Care          *string  `json:"care,omitempty"`
	CategoryID    uint     `json:"categoryId"`
	Images        []string `json:"images"`
}

func mapProduct(p product.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Stock:         p.Stock,
		Description:   p.Description,
		Care:          p.Care,
		CategoryID:    p.CategoryID,
		Images:        p.Images,
	}
}

type categoryResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

func mapCategory(c *category.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Image: c.Image}
}

type upsertProductRequest struct {
	Name          *string  `json:"name"`
	Price         *int64   `json:"price"`
	DiscountPrice *int64   `json:"discountPrice"`
	Stock         *int     `json:"stock"`
	Description   *string  `json:"description"`
	Care          *string  `json:"care"`
	CategoryID    *uint    `json:"categoryId"`
	Images        []string `json:"images"`
}

type upsertCategoryRequest struct {
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

// ---------- promos ----------

type validatePromoRequest struct {
	Code     string `json:"code"`
	Subtotal int64  `json:"subtotal"`
}

type validatePromoResponse struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	DiscountAmount  int64  `json:"discountAmount"`
	Payable         int64  `json:"payable"`
}

type upsertPromoRequest struct {
	Code            string     `json:"code"`
	DiscountPercent *int       `json:"discountPercent"`
	Active          *bool      `json:"active"`
	StartsAt        *time.Time `json:"startsAt"`
	ExpiresAt       *time.Time `json:"expiresAt"`
}

type promoResponse struct {
	ID              uint      `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discountPercent"`
	Active          bool      `json:"active"`
	StartsAt        time.Time `json:"startsAt"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

func mapPromo(p *promo.Promo) promoResponse {
	return promoResponse{
		ID:              p.ID,
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent,
		Active:          p.Active,
		StartsAt:        p.StartsAt,
		ExpiresAt:       p.ExpiresAt,
	}
}

// ---------- orders ----------

type cartItemRequest struct {
	ID       uint   `json:"id"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Name     string `json:"name"`
	Image    string `json:"image"`
}

type placeOrderRequest struct {
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Address     string            `json:"address"`
	CartItems   []cartItemRequest `json:"cartItems"`
	TotalAmount int64             `json:"totalAmount"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type lineItemResponse struct {
	ProductID uint   `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
}

type orderResponse struct {
	ID          uint               `json:"id"`
	UserID      uint               `json:"userId"`
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Address     string             `json:"address"`
	Items       []lineItemResponse `json:"items"`
	TotalAmount int64              `json:"totalAmount"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func mapOrder(o *order.Order) orderResponse {
	items := make([]lineItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = lineItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
			Image:     item.Image,
		}
	}

	return orderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Username:    o.Username,
		Email:       o.Email,
		Phone:       o.Phone,
		Address:     o.Address,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}

func mapOrders(orders []*order.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = mapOrder(o)
	}
	return out
}
