package entity

type Tweet struct {
	Base
	UserID      string `gorm:"index;not null"`
	User        User   `gorm:"foreignKey:UserID"`
	Description string `gorm:"type:text"`
}
