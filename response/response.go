package response

import "time"

// ProductView is a product row joined with its category names.
type ProductView struct {
	Seq         uint      `gorm:"column:p_seq" json:"p_seq"`
	KindSeq     uint      `gorm:"column:kc_seq" json:"kc_seq"`
	ColorSeq    uint      `gorm:"column:cc_seq" json:"cc_seq"`
	SizeSeq     uint      `gorm:"column:sc_seq" json:"sc_seq"`
	GenderSeq   uint      `gorm:"column:gc_seq" json:"gc_seq"`
	MakerSeq    uint      `gorm:"column:m_seq" json:"m_seq"`
	Name        string    `gorm:"column:p_name" json:"p_name"`
	Price       int       `gorm:"column:p_price" json:"p_price"`
	Stock       int       `gorm:"column:p_stock" json:"p_stock"`
	Image       string    `gorm:"column:p_image" json:"p_image"`
	Description string    `gorm:"column:p_description" json:"p_description"`
	Date        time.Time `gorm:"column:p_date" json:"p_date"`
	Color       string    `gorm:"column:p_color" json:"p_color"`
	Size        string    `gorm:"column:p_size" json:"p_size"`
	Gender      string    `gorm:"column:p_gender" json:"p_gender"`
	Maker       string    `gorm:"column:p_maker" json:"p_maker"`
	Kind        string    `gorm:"column:p_kind" json:"p_kind"`
}

// RefundView is a refund with the buyer's name and the purchase date.
type RefundView struct {
	Seq           uint      `gorm:"column:ref_seq" json:"ref_seq"`
	PurchaseSeq   uint      `gorm:"column:b_seq" json:"b_seq"`
	UserSeq       uint      `gorm:"column:u_seq" json:"u_seq"`
	StaffSeq      *uint     `gorm:"column:s_seq" json:"s_seq"`
	Date          time.Time `gorm:"column:ref_date" json:"ref_date"`
	ReasonSeq     int       `gorm:"column:ref_re_seq" json:"ref_re_seq"`
	ReasonContent string    `gorm:"column:ref_re_content" json:"ref_re_content"`
	UserName      string    `gorm:"column:u_name" json:"u_name"`
	PurchaseDate  time.Time `gorm:"column:b_date" json:"b_date"`
}

// RefundDetail adds the buyer's contact and the refunded product.
type RefundDetail struct {
	RefundView
	UserPhone   string `gorm:"column:u_phone" json:"u_phone"`
	UserLoginID string `gorm:"column:u_id" json:"u_id"`
	ProductName string `gorm:"column:p_name" json:"p_name"`
	SizeName    string `gorm:"column:sc_name" json:"sc_name"`
	ColorName   string `gorm:"column:cc_name" json:"cc_name"`
	Quantity    int    `gorm:"column:b_quantity" json:"b_quantity"`
}

// Category is a row of one of the product reference tables.
type Category struct {
	Seq  uint   `gorm:"column:seq" json:"seq"`
	Name string `gorm:"column:name" json:"name"`
}
