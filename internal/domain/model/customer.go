package model

// カートアクセス時に存在しなければ自動作成される（CustomerResolver参照）
type Customer struct {
	ID        int64  `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	FirstName string `gorm:"column:first_name;type:varchar(255);not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;type:varchar(255);not null" json:"last_name"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone     string `gorm:"type:varchar(50)" json:"phone,omitempty"`
}

func (Customer) TableName() string {
	return "customer"
}
