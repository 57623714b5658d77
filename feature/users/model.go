package users

// User is an account holder.
type User struct {
	ID       int64   `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Username string  `gorm:"index" json:"username" yaml:"username"`
	Email    string  `json:"email" yaml:"email"`
	Address  Address `gorm:"embedded;embeddedPrefix:address_" json:"address" yaml:"address"`
	Phone    string  `json:"phone" yaml:"phone"`
	Website  string  `json:"website" yaml:"website"`
	Company  Company `gorm:"embedded;embeddedPrefix:company_" json:"company" yaml:"company"`
}

func (u *User) GetID() int64   { return u.ID }
func (u *User) SetID(id int64) { u.ID = id }

// Address is a postal address.
type Address struct {
	Street  string `json:"street" yaml:"street"`
	Suite   string `json:"suite" yaml:"suite"`
	City    string `json:"city" yaml:"city"`
	Zipcode string `json:"zipcode" yaml:"zipcode"`
	Geo     Geo    `gorm:"embedded;embeddedPrefix:geo_" json:"geo" yaml:"geo"`
}

// Geo is a coordinate pair as the service sends it, in decimal strings.
type Geo struct {
	Lat string `json:"lat" yaml:"lat"`
	Lng string `json:"lng" yaml:"lng"`
}

// Company is the user's employer.
type Company struct {
	Name        string `json:"name" yaml:"name"`
	CatchPhrase string `json:"catchPhrase" yaml:"catchPhrase"`
	BS          string `gorm:"column:bs" json:"bs" yaml:"bs"`
}
