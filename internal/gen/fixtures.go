package gen

import (
	"seedgen/internal/models"
)

// PrimaryLocation is the single warehouse the generated inventory lives in.
const PrimaryLocation = "WH-CHI-01"

func baseCustomers() []models.Customer {
	return []models.Customer{
		{
			CustomerID: "C100001",
			FirstName:  "Jane",
			LastName:   "Doe",
			Email:      "jane.doe@example.com",
			Phone:      "+1-312-555-0101",
			Addresses: []models.Address{{
				AddressID: "ADDR-1", Type: "shipping", Line1: "123 Main St",
				City: "Chicago", State: "IL", PostalCode: "60601", Country: "US",
				IsDefault: true,
			}},
			Status:         "active",
			LoyaltyLevel:   models.LoyaltyGold,
			MarketingOptIn: true,
		},
		{
			CustomerID: "C100002",
			FirstName:  "John",
			LastName:   "Smith",
			Email:      "john.smith@example.com",
			Phone:      "+1-415-555-0199",
			Addresses: []models.Address{{
				AddressID: "ADDR-2", Type: "shipping", Line1: "500 W Madison",
				City: "Chicago", State: "IL", PostalCode: "60661", Country: "US",
				IsDefault: true,
			}},
			Status:         "active",
			LoyaltyLevel:   models.LoyaltySilver,
			MarketingOptIn: false,
		},
		{
			CustomerID: "C100003",
			FirstName:  "Alice",
			LastName:   "Nguyen",
			Email:      "alice.nguyen@example.com",
			Phone:      "+1-617-555-0123",
			Addresses: []models.Address{{
				AddressID: "ADDR-3", Type: "shipping", Line1: "1 Market St",
				City: "San Francisco", State: "CA", PostalCode: "94105", Country: "US",
				IsDefault: true,
			}},
			Status:         "active",
			LoyaltyLevel:   models.LoyaltyPlatinum,
			MarketingOptIn: true,
		},
		{
			CustomerID: "C100004",
			FirstName:  "Robert",
			LastName:   "Garcia",
			Email:      "robert.garcia@example.com",
			Phone:      "+1-773-555-0456",
			Addresses: []models.Address{{
				AddressID: "ADDR-4", Type: "shipping", Line1: "750 N Rush St",
				City: "Chicago", State: "IL", PostalCode: "60611", Country: "US",
				IsDefault: true,
			}},
			Status:         "active",
			LoyaltyLevel:   models.LoyaltyBronze,
			MarketingOptIn: true,
		},
		{
			CustomerID: "C100005",
			FirstName:  "Emily",
			LastName:   "Chen",
			Email:      "emily.chen@example.com",
			Phone:      "+1-213-555-0789",
			Addresses: []models.Address{{
				AddressID: "ADDR-5", Type: "shipping", Line1: "200 Spring St",
				City: "Los Angeles", State: "CA", PostalCode: "90013", Country: "US",
				IsDefault: true,
			}},
			Status:         "active",
			LoyaltyLevel:   models.LoyaltyBronze,
			MarketingOptIn: false,
		},
	}
}

func baseVendors() []models.Vendor {
	return []models.Vendor{
		{
			VendorID:     "V1001",
			Name:         "Acme Supplies Inc.",
			ContactName:  "Alice Smith",
			ContactEmail: "alice.smith@acme.example",
			ContactPhone: "+1-415-555-0123",
			Address: models.Address{
				Line1: "1 Market St", City: "San Francisco", State: "CA",
				PostalCode: "94105", Country: "US",
			},
			PaymentTerms: "NET_30",
			Rating:       4.5,
			Active:       true,
		},
		{
			VendorID:     "V1002",
			Name:         "Global Tech Distributors",
			ContactName:  "Bob Johnson",
			ContactEmail: "bob.johnson@globaltech.example",
			ContactPhone: "+1-646-555-0177",
			Address: models.Address{
				Line1: "200 Park Ave", City: "New York", State: "NY",
				PostalCode: "10017", Country: "US",
			},
			PaymentTerms: "NET_45",
			Rating:       4.7,
			Active:       true,
		},
		{
			VendorID:     "V1003",
			Name:         "Midwest Retail Partners",
			ContactName:  "Carol White",
			ContactEmail: "info@midwestretail.example",
			ContactPhone: "+1-312-555-0321",
			Address: models.Address{
				Line1: "350 W Mart Center Dr", City: "Chicago", State: "IL",
				PostalCode: "60654", Country: "US",
			},
			PaymentTerms: "NET_30",
			Rating:       4.2,
			Active:       true,
		},
	}
}

func baseProducts() []models.Product {
	return []models.Product{
		{
			ProductID:    "P1001",
			Name:         "Wireless Mouse",
			Description:  "Ergonomic wireless mouse with 2.4GHz receiver",
			Category:     "Electronics",
			Subcategory:  "Accessories",
			VendorID:     "V1001",
			BasePrice:    29.99,
			CurrentPrice: 24.99,
			Cost:         15.00,
			Currency:     "USD",
			Status:       "active",
			Attributes:   map[string]interface{}{"color": "black", "connectivity": "wireless", "dpi": 1600},
		},
		{
			ProductID:    "P1002",
			Name:         "Mechanical Keyboard",
			Description:  "RGB mechanical keyboard with blue switches",
			Category:     "Electronics",
			Subcategory:  "Accessories",
			VendorID:     "V1001",
			BasePrice:    99.00,
			CurrentPrice: 89.99,
			Cost:         60.00,
			Currency:     "USD",
			Status:       "active",
			Attributes:   map[string]interface{}{"layout": "US", "switch": "blue", "backlight": "RGB"},
		},
		{
			ProductID:    "P1003",
			Name:         "USB-C Docking Station",
			Description:  "11-in-1 docking station with dual HDMI",
			Category:     "Electronics",
			Subcategory:  "Accessories",
			VendorID:     "V1002",
			BasePrice:    169.99,
			CurrentPrice: 149.99,
			Cost:         95.00,
			Currency:     "USD",
			Status:       "active",
			Attributes:   map[string]interface{}{"ports": 11, "power_delivery_w": 100},
		},
		{
			ProductID:    "P1004",
			Name:         "27\" 4K Monitor",
			Description:  "27 inch IPS panel with HDR400",
			Category:     "Electronics",
			Subcategory:  "Displays",
			VendorID:     "V1002",
			BasePrice:    379.99,
			CurrentPrice: 329.99,
			Cost:         220.00,
			Currency:     "USD",
			Status:       "active",
			Attributes:   map[string]interface{}{"resolution": "3840x2160", "panel": "IPS"},
		},
		{
			ProductID:    "P1005",
			Name:         "Noise-Cancelling Headphones",
			Description:  "Over-ear wireless headphones with ANC",
			Category:     "Electronics",
			Subcategory:  "Audio",
			VendorID:     "V1003",
			BasePrice:    229.99,
			CurrentPrice: 199.99,
			Cost:         120.00,
			Currency:     "USD",
			Status:       "active",
			Attributes:   map[string]interface{}{"battery_hours": 30, "anc": true},
		},
	}
}

func baseSubscribers() []models.Subscriber {
	return []models.Subscriber{
		{ID: "A100", Tier: models.TierEnterprise},
		{ID: "B200", Tier: models.TierPro},
		{ID: "C300", Tier: models.TierPro},
		{ID: "D400", Tier: models.TierFree},
		{ID: "E500", Tier: models.TierFree},
	}
}

func baseReportTypes() []string {
	return []string{
		"daily_summary",
		"inventory_delta",
		"risk_scoring",
		"fraud_watch",
		"activity_digest",
	}
}
