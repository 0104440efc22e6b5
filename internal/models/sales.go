package models

import (
	"time"
)

// Address is an embedded address document used by customers and orders.
type Address struct {
	AddressID  string `bson:"address_id,omitempty" json:"address_id,omitempty"`
	Type       string `bson:"type,omitempty" json:"type,omitempty"`
	Name       string `bson:"name,omitempty" json:"name,omitempty"`
	Line1      string `bson:"line1" json:"line1"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postal_code" json:"postal_code"`
	Country    string `bson:"country" json:"country"`
	IsDefault  bool   `bson:"is_default,omitempty" json:"is_default,omitempty"`
}

// Customer represents a customer document in the sales database
type Customer struct {
	CustomerID     string    `bson:"customer_id" json:"customer_id"`
	FirstName      string    `bson:"first_name" json:"first_name"`
	LastName       string    `bson:"last_name" json:"last_name"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone" json:"phone"`
	Addresses      []Address `bson:"addresses" json:"addresses"`
	Status         string    `bson:"status" json:"status"`
	LoyaltyLevel   string    `bson:"loyalty_level" json:"loyalty_level"`
	MarketingOptIn bool      `bson:"marketing_opt_in" json:"marketing_opt_in"`
	CreatedAt      time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// Vendor represents a supplier document in the sales database
type Vendor struct {
	VendorID     string    `bson:"vendor_id" json:"vendor_id"`
	Name         string    `bson:"name" json:"name"`
	ContactName  string    `bson:"contact_name" json:"contact_name"`
	ContactEmail string    `bson:"contact_email" json:"contact_email"`
	ContactPhone string    `bson:"contact_phone" json:"contact_phone"`
	Address      Address   `bson:"address" json:"address"`
	PaymentTerms string    `bson:"payment_terms" json:"payment_terms"`
	Rating       float64   `bson:"rating" json:"rating"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Product represents a catalog item. CurrentPrice is the only field that
// changes after creation (price drift); it must stay above the drift floor.
type Product struct {
	ProductID    string                 `bson:"product_id" json:"product_id"`
	Name         string                 `bson:"name" json:"name"`
	Description  string                 `bson:"description" json:"description"`
	Category     string                 `bson:"category" json:"category"`
	Subcategory  string                 `bson:"subcategory" json:"subcategory"`
	VendorID     string                 `bson:"vendor_id" json:"vendor_id"`
	BasePrice    float64                `bson:"base_price" json:"base_price"`
	CurrentPrice float64                `bson:"current_price" json:"current_price"`
	Cost         float64                `bson:"cost" json:"cost"`
	Currency     string                 `bson:"currency" json:"currency"`
	Status       string                 `bson:"status" json:"status"`
	Attributes   map[string]interface{} `bson:"attributes" json:"attributes"`
	CreatedAt    time.Time              `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt    time.Time              `bson:"updated_at" json:"updated_at"`
}

// RestockSource records where the last replenishment came from.
type RestockSource struct {
	VendorID        string `bson:"vendor_id" json:"vendor_id"`
	PurchaseOrderID string `bson:"purchase_order_id" json:"purchase_order_id"`
}

// InventoryRecord tracks stock for one (product, location) pair.
// AvailableQty is always OnHandQty - ReservedQty and is recomputed on
// every mutation; OnHandQty never goes below zero.
type InventoryRecord struct {
	ProductID       string        `bson:"product_id" json:"product_id"`
	LocationID      string        `bson:"location_id" json:"location_id"`
	LocationType    string        `bson:"location_type" json:"location_type"`
	OnHandQty       int           `bson:"on_hand_qty" json:"on_hand_qty"`
	ReservedQty     int           `bson:"reserved_qty" json:"reserved_qty"`
	AvailableQty    int           `bson:"available_qty" json:"available_qty"`
	ReorderLevel    int           `bson:"reorder_level" json:"reorder_level"`
	SafetyStock     int           `bson:"safety_stock" json:"safety_stock"`
	LastRestockedAt time.Time     `bson:"last_restocked_at" json:"last_restocked_at"`
	LastCountedAt   time.Time     `bson:"last_counted_at" json:"last_counted_at"`
	LastRestock     RestockSource `bson:"last_restock_source" json:"last_restock_source"`
	CreatedAt       time.Time     `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

// StatusChange is one entry in an order's status history.
type StatusChange struct {
	Status string    `bson:"status" json:"status"`
	At     time.Time `bson:"at" json:"at"`
	Reason string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// LineItem is a single order line.
// ExtendedPrice = round(UnitPrice*Quantity - DiscountAmount + TaxAmount, 2).
type LineItem struct {
	LineNo         int     `bson:"line_no" json:"line_no"`
	ProductID      string  `bson:"product_id" json:"product_id"`
	VendorID       string  `bson:"vendor_id" json:"vendor_id"`
	Quantity       int     `bson:"quantity" json:"quantity"`
	UnitPrice      float64 `bson:"unit_price" json:"unit_price"`
	DiscountAmount float64 `bson:"discount_amount" json:"discount_amount"`
	TaxAmount      float64 `bson:"tax_amount" json:"tax_amount"`
	ExtendedPrice  float64 `bson:"extended_price" json:"extended_price"`
}

// Totals rolls up the money fields of an order.
// GrandTotal = round(Subtotal - Discount + Tax + Shipping, 2).
type Totals struct {
	Subtotal   float64 `bson:"subtotal" json:"subtotal"`
	Tax        float64 `bson:"tax" json:"tax"`
	Shipping   float64 `bson:"shipping" json:"shipping"`
	Discount   float64 `bson:"discount" json:"discount"`
	GrandTotal float64 `bson:"grand_total" json:"grand_total"`
}

// Payment is the payment sub-record of an order.
type Payment struct {
	Method        string    `bson:"method" json:"method"`
	Provider      string    `bson:"provider" json:"provider"`
	Last4         string    `bson:"last4" json:"last4"`
	TransactionID string    `bson:"transaction_id" json:"transaction_id"`
	PaidAt        time.Time `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
}

// Shipment is the shipment sub-record of an order.
type Shipment struct {
	Carrier        string    `bson:"carrier" json:"carrier"`
	ServiceLevel   string    `bson:"service_level" json:"service_level"`
	TrackingNumber string    `bson:"tracking_number" json:"tracking_number"`
	ShippedAt      time.Time `bson:"shipped_at,omitempty" json:"shipped_at,omitempty"`
}

// Order is one generated sales order. Orders are append-only: once emitted
// they are never mutated, and the last status history entry's timestamp
// equals UpdatedAt.
type Order struct {
	OrderID         string         `bson:"order_id" json:"order_id"`
	CustomerID      string         `bson:"customer_id" json:"customer_id"`
	OrderDate       time.Time      `bson:"order_date" json:"order_date"`
	Status          string         `bson:"status" json:"status"`
	StatusHistory   []StatusChange `bson:"status_history" json:"status_history"`
	LineItems       []LineItem     `bson:"line_items" json:"line_items"`
	Totals          Totals         `bson:"totals" json:"totals"`
	Currency        string         `bson:"currency" json:"currency"`
	PaymentMethod   string         `bson:"payment_method" json:"payment_method"`
	SalesChannel    string         `bson:"sales_channel" json:"sales_channel"`
	ShippingAddress Address        `bson:"shipping_address" json:"shipping_address"`
	BillingAddress  Address        `bson:"billing_address" json:"billing_address"`
	Payment         *Payment       `bson:"payment,omitempty" json:"payment,omitempty"`
	Shipment        *Shipment      `bson:"shipment,omitempty" json:"shipment,omitempty"`
	CreatedAt       time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `bson:"updated_at" json:"updated_at"`
}

// Order statuses
const (
	OrderStatusNew      = "NEW"
	OrderStatusPaid     = "PAID"
	OrderStatusShipped  = "SHIPPED"
	OrderStatusCanceled = "CANCELED"
)

// Loyalty levels
const (
	LoyaltyBronze   = "bronze"
	LoyaltySilver   = "silver"
	LoyaltyGold     = "gold"
	LoyaltyPlatinum = "platinum"
)
