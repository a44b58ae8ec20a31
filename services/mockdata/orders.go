package mockdata

import (
	// Local Packages
	models "tap-terminal/models"
)

var orders = []models.Order{
	{ID: "ORD-001", OrderNumber: "ORD-001", CustomerNumber: "CUST-001", CustomerName: "John Smith", FirstName: "John", LastName: "Smith", Amount: 4599, Status: "Pending", Date: "2024-01-15"},
	{ID: "ORD-002", OrderNumber: "ORD-002", CustomerNumber: "CUST-002", CustomerName: "Sarah Johnson", FirstName: "Sarah", LastName: "Johnson", Amount: 12750, Status: "Pending", Date: "2024-01-15"},
	{ID: "ORD-003", OrderNumber: "ORD-003", CustomerNumber: "CUST-003", CustomerName: "Mike Davis", FirstName: "Mike", LastName: "Davis", Amount: 8999, Status: "Pending", Date: "2024-01-14"},
	{ID: "ORD-004", OrderNumber: "ORD-004", CustomerNumber: "CUST-004", CustomerName: "Emily Wilson", FirstName: "Emily", LastName: "Wilson", Amount: 23475, Status: "Pending", Date: "2024-01-14"},
	{ID: "ORD-005", OrderNumber: "ORD-005", CustomerNumber: "CUST-005", CustomerName: "David Brown", FirstName: "David", LastName: "Brown", Amount: 6725, Status: "Pending", Date: "2024-01-13"},
	{ID: "ORD-006", OrderNumber: "ORD-006", CustomerNumber: "CUST-006", CustomerName: "Lisa Garcia", FirstName: "Lisa", LastName: "Garcia", Amount: 15680, Status: "Pending", Date: "2024-01-13"},
}

var recentlyViewed = []struct {
	id   string
	when string
}{
	{"ORD-001", "2 minutes ago"},
	{"ORD-003", "5 minutes ago"},
	{"ORD-002", "10 minutes ago"},
}

func (r *Random) Orders() []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	return out
}

func (r *Random) RecentOrders() []models.Order {
	out := make([]models.Order, 0, len(recentlyViewed))
	for _, rv := range recentlyViewed {
		for _, o := range orders {
			if o.ID == rv.id {
				o.LastViewed = rv.when
				out = append(out, o)
			}
		}
	}
	return out
}

func (r *Random) Catalog() models.Catalog {
	return models.Catalog{
		Parts: []models.CatalogItem{
			{ID: "P001", Name: "Oil Filter", Price: 1299, Group: "Maintenance", Category: models.CategoryParts},
			{ID: "P002", Name: "Brake Pads (Front)", Price: 8999, Group: "Brakes", Category: models.CategoryParts},
			{ID: "P003", Name: "Brake Pads (Rear)", Price: 7999, Group: "Brakes", Category: models.CategoryParts},
			{ID: "P004", Name: "Air Filter", Price: 2499, Group: "Maintenance", Category: models.CategoryParts},
			{ID: "P005", Name: "Spark Plugs (Set)", Price: 4599, Group: "Engine", Category: models.CategoryParts},
			{ID: "P006", Name: "Battery", Price: 12999, Group: "Electrical", Category: models.CategoryParts},
			{ID: "P007", Name: "Tire (Standard)", Price: 8999, Group: "Tires", Category: models.CategoryParts},
			{ID: "P008", Name: "Wiper Blades (Set)", Price: 1899, Group: "Maintenance", Category: models.CategoryParts},
			{ID: "P009", Name: "Radiator Hose", Price: 3499, Group: "Cooling", Category: models.CategoryParts},
			{ID: "P010", Name: "Fuel Filter", Price: 1999, Group: "Fuel System", Category: models.CategoryParts},
		},
		Services: []models.CatalogItem{
			{ID: "S001", Name: "Oil Change", Price: 2999, Hours: 0.5, Group: "Maintenance", Category: models.CategoryServices},
			{ID: "S002", Name: "Brake Service", Price: 8999, Hours: 1.5, Group: "Brakes", Category: models.CategoryServices},
			{ID: "S003", Name: "Tire Rotation", Price: 2499, Hours: 0.5, Group: "Tires", Category: models.CategoryServices},
			{ID: "S004", Name: "Tune Up", Price: 14999, Hours: 2.0, Group: "Engine", Category: models.CategoryServices},
			{ID: "S005", Name: "AC Recharge", Price: 8999, Hours: 1.0, Group: "HVAC", Category: models.CategoryServices},
			{ID: "S006", Name: "Wheel Alignment", Price: 6999, Hours: 1.0, Group: "Suspension", Category: models.CategoryServices},
			{ID: "S007", Name: "Battery Replacement", Price: 1999, Hours: 0.5, Group: "Electrical", Category: models.CategoryServices},
			{ID: "S008", Name: "Transmission Service", Price: 19999, Hours: 2.5, Group: "Transmission", Category: models.CategoryServices},
		},
		LaborRate: r.laborRate,
	}
}
