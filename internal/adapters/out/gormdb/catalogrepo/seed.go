package catalogrepo

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// seedRow describes one item of the default assortment in literal-friendly form.
type seedRow struct {
	id       string
	name     string
	category string
	price    string
	brand    string
	size     string
	tags     []string
}

// defaultAssortment is the catalog written to an empty database on first
// start. Prices are in rupees.
var defaultAssortment = []seedRow{
	{"bread-001", "Whole Wheat Bread", "bakery", "45.00", "Britannia", "400 g", []string{"bread", "breakfast"}},
	{"eggs-001", "Farm Eggs 6pk", "dairy", "40.00", "", "6 pcs", []string{"eggs", "breakfast", "protein"}},
	{"milk-001", "Toned Milk", "dairy", "28.00", "Amul", "500 ml", []string{"milk", "breakfast"}},
	{"butter-001", "Salted Butter", "dairy", "60.00", "Amul", "100 g", []string{"butter"}},
	{"paneer-001", "Fresh Paneer", "dairy", "90.00", "Amul", "200 g", []string{"paneer", "protein"}},
	{"curd-001", "Dahi Cup", "dairy", "35.00", "Amul", "400 g", []string{"curd", "dahi"}},
	{"rice-001", "Basmati Rice", "staples", "145.00", "Fortune", "1 kg", []string{"rice", "basmati"}},
	{"atta-001", "Whole Wheat Atta", "staples", "325.00", "Aashirvaad", "5 kg", []string{"atta", "flour"}},
	{"dal-001", "Toor Dal", "staples", "160.00", "Tata", "1 kg", []string{"dal", "lentils", "protein"}},
	{"dal-002", "Moong Dal", "staples", "150.00", "Tata", "1 kg", []string{"dal", "lentils"}},
	{"oil-001", "Sunflower Oil", "staples", "135.00", "Fortune", "1 L", []string{"oil", "cooking"}},
	{"salt-001", "Iodised Salt", "staples", "25.00", "Tata", "1 kg", []string{"salt"}},
	{"sugar-001", "Sugar", "staples", "45.00", "", "1 kg", []string{"sugar"}},
	{"poha-001", "Thick Poha", "staples", "48.00", "", "500 g", []string{"poha", "breakfast"}},
	{"tea-001", "Premium Tea", "beverages", "140.00", "Tata", "250 g", []string{"tea", "chai"}},
	{"coffee-001", "Instant Coffee", "beverages", "190.00", "Bru", "100 g", []string{"coffee"}},
	{"juice-001", "Mango Juice", "beverages", "99.00", "Real", "1 L", []string{"juice", "mango"}},
	{"biscuit-001", "Marie Gold Biscuits", "snacks", "30.00", "Britannia", "250 g", []string{"biscuits", "tea-time"}},
	{"namkeen-001", "Aloo Bhujia", "snacks", "55.00", "Haldiram", "200 g", []string{"namkeen", "bhujia"}},
	{"masala-001", "Garam Masala", "spices", "78.00", "Everest", "100 g", []string{"masala", "spices"}},
	{"turmeric-001", "Turmeric Powder", "spices", "52.00", "Everest", "200 g", []string{"haldi", "spices"}},
	{"onion-001", "Onions", "produce", "35.00", "", "1 kg", []string{"onion", "vegetables"}},
	{"potato-001", "Potatoes", "produce", "30.00", "", "1 kg", []string{"potato", "vegetables"}},
	{"tomato-001", "Tomatoes", "produce", "40.00", "", "500 g", []string{"tomato", "vegetables"}},
	{"banana-001", "Bananas", "produce", "50.00", "", "1 dozen", []string{"banana", "fruit"}},
	{"apple-001", "Shimla Apples", "produce", "180.00", "", "1 kg", []string{"apple", "fruit"}},
}

// seedDTOs renders the default assortment into database rows.
func seedDTOs() ([]ItemDTO, error) {
	dtos := make([]ItemDTO, 0, len(defaultAssortment))
	for _, row := range defaultAssortment {
		price, err := decimal.NewFromString(row.price)
		if err != nil {
			return nil, fmt.Errorf("seed item %s has malformed price: %w", row.id, err)
		}

		tags, err := json.Marshal(row.tags)
		if err != nil {
			return nil, fmt.Errorf("seed item %s has malformed tags: %w", row.id, err)
		}

		dtos = append(dtos, ItemDTO{
			ID:       row.id,
			Name:     row.name,
			Category: row.category,
			Price:    price,
			Brand:    row.brand,
			Size:     row.size,
			Tags:     string(tags),
		})
	}

	return dtos, nil
}
