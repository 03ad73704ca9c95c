package menu

// Item is one entry of the fixed canteen menu
type Item struct {
	ID    int    `json:"id"`    // Menu item ID, referenced by order forms
	Name  string `json:"name"`  // Display name
	Price int    `json:"price"` // Unit price in integer currency units
}

// Items is the fixed menu. It is read-only reference data: nothing in the
// application mutates it, so it is safe to share across requests.
var Items = []Item{
	{ID: 1, Name: "Veg Sandwich", Price: 30},
	{ID: 2, Name: "Chicken Burger", Price: 50},
	{ID: 3, Name: "Coffee", Price: 20},
	{ID: 4, Name: "Tea", Price: 15},
	{ID: 5, Name: "French Fries", Price: 25},
	{ID: 6, Name: "Paneer Roll", Price: 40},
	{ID: 7, Name: "Egg Puff", Price: 18},
	{ID: 8, Name: "Masala Dosa", Price: 35},
	{ID: 9, Name: "Veg Noodles", Price: 45},
	{ID: 10, Name: "Samosa", Price: 12},
	{ID: 11, Name: "Cold Drink", Price: 25},
	{ID: 12, Name: "Chocolate Cake", Price: 30},
	{ID: 13, Name: "Pasta", Price: 55},
	{ID: 14, Name: "Spring Roll", Price: 30},
	{ID: 15, Name: "Idli Sambar", Price: 28},
}

// ByID returns the menu item with the given ID
func ByID(id int) (Item, bool) {
	// Linear scan is fine for a fixed 15-item menu
	for _, item := range Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
