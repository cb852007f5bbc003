package entity

// ProfilePlaceholder is the initial value for role-profile fields. Profiles
// are created empty at promotion time and filled in by the user afterwards.
const ProfilePlaceholder = "Edit"

// Shopkeeper holds the shopkeeper-specific profile, one-to-one with User.
type Shopkeeper struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ShopName    string `gorm:"size:100;not null" json:"shop_name"`
	ShopAddress string `gorm:"size:255;not null" json:"shop_address"`
	ShopPhone   string `gorm:"size:30;not null" json:"shop_phone"`
	Bio         string `gorm:"size:500;not null" json:"bio"`
}

func (Shopkeeper) TableName() string {
	return "shopkeepers"
}

// NewShopkeeperProfile returns a shopkeeper profile with placeholder fields.
func NewShopkeeperProfile(id uint) *Shopkeeper {
	return &Shopkeeper{
		ID:          id,
		ShopName:    ProfilePlaceholder,
		ShopAddress: ProfilePlaceholder,
		ShopPhone:   ProfilePlaceholder,
		Bio:         ProfilePlaceholder,
	}
}

// Labour holds the labourer-specific profile, one-to-one with User.
type Labour struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Phone      string `gorm:"size:30;not null" json:"phone"`
	Address    string `gorm:"size:255;not null" json:"address"`
	Experience string `gorm:"size:500;not null" json:"experience"`
}

func (Labour) TableName() string {
	return "labours"
}

// NewLabourProfile returns a labour profile with placeholder fields.
func NewLabourProfile(id uint) *Labour {
	return &Labour{
		ID:         id,
		Name:       ProfilePlaceholder,
		Phone:      ProfilePlaceholder,
		Address:    ProfilePlaceholder,
		Experience: ProfilePlaceholder,
	}
}
