package item

type Category string

const (
	CategoryTools       Category = "tools"
	CategoryElectronics Category = "electronics"
	CategoryCamera      Category = "camera"
	CategorySports      Category = "sports"
	CategoryKitchen     Category = "kitchen"
	CategoryParty       Category = "party"
	CategoryFurniture   Category = "furniture"
	CategoryBooks       Category = "books"
	CategoryOther       Category = "other"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryTools, CategoryElectronics, CategoryCamera, CategorySports,
		CategoryKitchen, CategoryParty, CategoryFurniture, CategoryBooks, CategoryOther:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Categories lists every valid category with its display label, in the
// order the storefront presents them.
func Categories() []struct{ Value, Label string } {
	return []struct{ Value, Label string }{
		{string(CategoryTools), "Tools & Hardware"},
		{string(CategoryElectronics), "Electronics"},
		{string(CategoryCamera), "Camera & Photography"},
		{string(CategorySports), "Sports & Outdoors"},
		{string(CategoryKitchen), "Kitchen & Appliances"},
		{string(CategoryParty), "Party & Events"},
		{string(CategoryFurniture), "Furniture"},
		{string(CategoryBooks), "Books & Media"},
		{string(CategoryOther), "Other"},
	}
}
