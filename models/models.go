package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branch is a physical store location.
type Branch struct {
	Seq     uint            `gorm:"column:br_seq;primaryKey" json:"br_seq"`
	Phone   string          `gorm:"column:br_phone;size:20;not null" json:"br_phone"`
	Address string          `gorm:"column:br_address;size:255;not null" json:"br_address"`
	Name    string          `gorm:"column:br_name;size:100;not null" json:"br_name"`
	Lat     decimal.Decimal `gorm:"column:br_lat;type:decimal(10,7);not null" json:"br_lat"`
	Lng     decimal.Decimal `gorm:"column:br_lng;type:decimal(10,7);not null" json:"br_lng"`
}

func (Branch) TableName() string {
	return "branch"
}

func (b Branch) PrimaryKey() uint {
	return b.Seq
}

// Customer is an online shop account. The password is write only.
type Customer struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"id"`
	Email        string `gorm:"column:cEmail;size:100;not null;uniqueIndex" json:"cEmail"`
	PhoneNumber  string `gorm:"column:cPhoneNumber;size:20;not null" json:"cPhoneNumber"`
	Name         string `gorm:"column:cName;size:50;not null" json:"cName"`
	Password     string `gorm:"column:cPassword;size:255;not null" json:"-"`
	ProfileImage []byte `gorm:"column:cProfileImage" json:"cProfileImage"`
}

func (Customer) TableName() string {
	return "Customer"
}

func (c Customer) PrimaryKey() uint {
	return c.ID
}

// KindCategory, ColorCategory, SizeCategory, GenderCategory and Maker are
// reference data joined into product listings.
type KindCategory struct {
	Seq  uint   `gorm:"column:kc_seq;primaryKey" json:"kc_seq"`
	Name string `gorm:"column:kc_name;size:50;not null;uniqueIndex" json:"kc_name"`
}

func (KindCategory) TableName() string {
	return "kind_category"
}

func (k KindCategory) PrimaryKey() uint {
	return k.Seq
}

type ColorCategory struct {
	Seq  uint   `gorm:"column:cc_seq;primaryKey" json:"cc_seq"`
	Name string `gorm:"column:cc_name;size:50;not null;uniqueIndex" json:"cc_name"`
}

func (ColorCategory) TableName() string {
	return "color_category"
}

func (c ColorCategory) PrimaryKey() uint {
	return c.Seq
}

type SizeCategory struct {
	Seq  uint   `gorm:"column:sc_seq;primaryKey" json:"sc_seq"`
	Name string `gorm:"column:sc_name;size:50;not null;uniqueIndex" json:"sc_name"`
}

func (SizeCategory) TableName() string {
	return "size_category"
}

func (s SizeCategory) PrimaryKey() uint {
	return s.Seq
}

type GenderCategory struct {
	Seq  uint   `gorm:"column:gc_seq;primaryKey" json:"gc_seq"`
	Name string `gorm:"column:gc_name;size:50;not null;uniqueIndex" json:"gc_name"`
}

func (GenderCategory) TableName() string {
	return "gender_category"
}

func (g GenderCategory) PrimaryKey() uint {
	return g.Seq
}

type Maker struct {
	Seq  uint   `gorm:"column:m_seq;primaryKey" json:"m_seq"`
	Name string `gorm:"column:m_name;size:100;not null;uniqueIndex" json:"m_name"`
}

func (Maker) TableName() string {
	return "maker"
}

func (m Maker) PrimaryKey() uint {
	return m.Seq
}

// Product is a sellable item. Category names are resolved through joins, see
// response.ProductView.
type Product struct {
	Seq         uint      `gorm:"column:p_seq;primaryKey" json:"p_seq"`
	KindSeq     uint      `gorm:"column:kc_seq;not null;index" json:"kc_seq"`
	ColorSeq    uint      `gorm:"column:cc_seq;not null;index" json:"cc_seq"`
	SizeSeq     uint      `gorm:"column:sc_seq;not null;index" json:"sc_seq"`
	GenderSeq   uint      `gorm:"column:gc_seq;not null;index" json:"gc_seq"`
	MakerSeq    uint      `gorm:"column:m_seq;not null;index" json:"m_seq"`
	Name        string    `gorm:"column:p_name;size:100;not null;index" json:"p_name"`
	Price       int       `gorm:"column:p_price;not null" json:"p_price"`
	Stock       int       `gorm:"column:p_stock;not null" json:"p_stock"`
	Image       string    `gorm:"column:p_image;type:text" json:"p_image"`
	Description string    `gorm:"column:p_description;type:text" json:"p_description"`
	Date        time.Time `gorm:"column:p_date;not null" json:"p_date"`

	Kind   KindCategory   `gorm:"foreignKey:KindSeq" json:"-"`
	Color  ColorCategory  `gorm:"foreignKey:ColorSeq" json:"-"`
	Size   SizeCategory   `gorm:"foreignKey:SizeSeq" json:"-"`
	Gender GenderCategory `gorm:"foreignKey:GenderSeq" json:"-"`
	Maker  Maker          `gorm:"foreignKey:MakerSeq" json:"-"`
}

func (Product) TableName() string {
	return "product"
}

func (p Product) PrimaryKey() uint {
	return p.Seq
}

// ProductBase is the catalogue description shared by product variants.
type ProductBase struct {
	ID          uint    `gorm:"column:id;primaryKey" json:"id"`
	Name        string  `gorm:"column:pName;size:100;not null" json:"pName"`
	Description *string `gorm:"column:pDescription;type:text" json:"pDescription"`
	Color       *string `gorm:"column:pColor;size:50" json:"pColor"`
	Gender      *string `gorm:"column:pGender;size:20" json:"pGender"`
	Status      *string `gorm:"column:pStatus;size:20" json:"pStatus"`
	FeatureType *string `gorm:"column:pFeatureType;size:50" json:"pFeatureType"`
	Category    *string `gorm:"column:pCategory;size:50" json:"pCategory"`
	ModelNumber *string `gorm:"column:pModelNumber;size:50" json:"pModelNumber"`
}

func (ProductBase) TableName() string {
	return "ProductBase"
}

func (p ProductBase) PrimaryKey() uint {
	return p.ID
}

// User is a member who buys products and picks them up at a branch.
type User struct {
	Seq       uint       `gorm:"column:u_seq;primaryKey" json:"u_seq"`
	LoginID   string     `gorm:"column:u_id;size:50;not null;uniqueIndex" json:"u_id"`
	Password  string     `gorm:"column:u_password;size:255;not null" json:"-"`
	Name      string     `gorm:"column:u_name;size:50;not null" json:"u_name"`
	Phone     string     `gorm:"column:u_phone;size:20;not null" json:"u_phone"`
	Image     []byte     `gorm:"column:u_image" json:"u_image"`
	Address   string     `gorm:"column:u_address;size:255" json:"u_address"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	QuitDate  *time.Time `gorm:"column:u_quit_date" json:"u_quit_date"`
}

func (User) TableName() string {
	return "user"
}

func (u User) PrimaryKey() uint {
	return u.Seq
}

// Staff is an employee of a branch.
type Staff struct {
	Seq       uint       `gorm:"column:s_seq;primaryKey" json:"s_seq"`
	LoginID   string     `gorm:"column:s_id;size:50;not null;uniqueIndex" json:"s_id"`
	BranchSeq uint       `gorm:"column:br_seq;not null;index" json:"br_seq"`
	Password  string     `gorm:"column:s_password;size:255;not null" json:"-"`
	Image     []byte     `gorm:"column:s_image" json:"s_image"`
	Rank      string     `gorm:"column:s_rank;size:20;not null" json:"s_rank"`
	Phone     string     `gorm:"column:s_phone;size:20;not null" json:"s_phone"`
	Name      string     `gorm:"column:s_name;size:50;not null" json:"s_name"`
	SuperSeq  *uint      `gorm:"column:s_superseq" json:"s_superseq"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	QuitDate  *time.Time `gorm:"column:s_quit_date" json:"s_quit_date"`

	Branch Branch `gorm:"foreignKey:BranchSeq" json:"-"`
}

func (Staff) TableName() string {
	return "staff"
}

func (s Staff) PrimaryKey() uint {
	return s.Seq
}

// PurchaseItem is one product bought by a user for pickup at a branch.
type PurchaseItem struct {
	Seq        uint      `gorm:"column:b_seq;primaryKey" json:"b_seq"`
	BranchSeq  uint      `gorm:"column:br_seq;not null;index" json:"br_seq"`
	UserSeq    uint      `gorm:"column:u_seq;not null;index" json:"u_seq"`
	ProductSeq uint      `gorm:"column:p_seq;not null;index" json:"p_seq"`
	Price      int       `gorm:"column:b_price;not null" json:"b_price"`
	Quantity   int       `gorm:"column:b_quantity;not null" json:"b_quantity"`
	Date       time.Time `gorm:"column:b_date;not null" json:"b_date"`
	Status     string    `gorm:"column:b_status;size:20;not null" json:"b_status"`

	Branch  Branch  `gorm:"foreignKey:BranchSeq" json:"-"`
	User    User    `gorm:"foreignKey:UserSeq" json:"-"`
	Product Product `gorm:"foreignKey:ProductSeq" json:"-"`
}

func (PurchaseItem) TableName() string {
	return "purchase_item"
}

func (p PurchaseItem) PrimaryKey() uint {
	return p.Seq
}

// LoginHistory records a customer login.
type LoginHistory struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	CustomerID    uint      `gorm:"column:cid;not null;index" json:"cid"`
	LoginTime     time.Time `gorm:"column:loginTime;not null" json:"loginTime"`
	Status        string    `gorm:"column:lStatus;size:20;not null" json:"lStatus"`
	Version       float64   `gorm:"column:lVersion" json:"lVersion"`
	Address       string    `gorm:"column:lAddress;size:255" json:"lAddress"`
	PaymentMethod string    `gorm:"column:lPaymentMethod;size:50" json:"lPaymentMethod"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (LoginHistory) TableName() string {
	return "LoginHistory"
}

func (l LoginHistory) PrimaryKey() uint {
	return l.ID
}

// Refund is a return request for a purchase item, optionally handled by staff.
type Refund struct {
	Seq           uint      `gorm:"column:ref_seq;primaryKey" json:"ref_seq"`
	PurchaseSeq   uint      `gorm:"column:b_seq;not null;index" json:"b_seq"`
	UserSeq       uint      `gorm:"column:u_seq;not null;index" json:"u_seq"`
	StaffSeq      *uint     `gorm:"column:s_seq;index" json:"s_seq"`
	Date          time.Time `gorm:"column:ref_date;not null;index" json:"ref_date"`
	ReasonSeq     int       `gorm:"column:ref_re_seq;not null" json:"ref_re_seq"`
	ReasonContent string    `gorm:"column:ref_re_content;type:text" json:"ref_re_content"`

	Purchase PurchaseItem `gorm:"foreignKey:PurchaseSeq" json:"-"`
	User     User         `gorm:"foreignKey:UserSeq" json:"-"`
	Staff    *Staff       `gorm:"foreignKey:StaffSeq" json:"-"`
}

func (Refund) TableName() string {
	return "refund"
}

func (r Refund) PrimaryKey() uint {
	return r.Seq
}

// All returns every model in dependency order, for migrations.
func All() []interface{} {
	return []interface{}{
		&Branch{},
		&Customer{},
		&KindCategory{},
		&ColorCategory{},
		&SizeCategory{},
		&GenderCategory{},
		&Maker{},
		&Product{},
		&ProductBase{},
		&User{},
		&Staff{},
		&PurchaseItem{},
		&LoginHistory{},
		&Refund{},
	}
}
