package albums

// Album is a named photo album owned by a user.
type Album struct {
	ID     int64  `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	UserID int64  `gorm:"index" json:"userId" yaml:"userId"`
	Title  string `json:"title" yaml:"title"`
}

func (a *Album) GetID() int64   { return a.ID }
func (a *Album) SetID(id int64) { a.ID = id }
