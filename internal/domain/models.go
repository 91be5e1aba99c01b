package domain

type Book struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	TitleAr     string  `db:"title_ar"`
	AuthorID    string  `db:"author_id"`
	CategoryID  string  `db:"category_id"`
	PublisherID string  `db:"publisher_id"`
	Price       float64 `db:"price"`
	StockQty    int     `db:"stock_qty"`
	Available   bool    `db:"available"`
	Featured    bool    `db:"featured"`
	NewRelease  bool    `db:"new_release"`
	CoverURL    string  `db:"cover_url"`
	Description string  `db:"description"`
	CreatedAt   string  `db:"created_at"`
	UpdatedAt   string  `db:"updated_at"`
}

type Author struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	NameAr         string `db:"name_ar"`
	Bio            string `db:"bio"`
	BirthYear      int    `db:"birth_year"`
	Country        string `db:"country"`
	City           string `db:"city"`
	Specialization string `db:"specialization"`
	AwardsJSON     string `db:"awards_json"`
	Website        string `db:"website"`
	BookCount      int    `db:"book_count"`
	CreatedAt      string `db:"created_at"`
}

type Category struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	NameAr           string `db:"name_ar"`
	Description      string `db:"description"`
	Icon             string `db:"icon"`
	Featured         bool   `db:"featured"`
	Popular          bool   `db:"popular"`
	ParentID         string `db:"parent_id"`
	BookCount        int    `db:"book_count"`
	SubcategoryCount int    `db:"subcategory_count"`
	TagsJSON         string `db:"tags_json"`
	CreatedAt        string `db:"created_at"`
}

type Publisher struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Country string `db:"country"`
}

type ProductType struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type Grade struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Level int    `db:"level"`
}

type Subject struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

// Product is a non-book study material (stationery, past-paper packs, ...).
type Product struct {
	ID            string  `db:"id"`
	ProductTypeID string  `db:"product_type_id"`
	GradeID       string  `db:"grade_id"`
	SubjectID     string  `db:"subject_id"`
	Title         string  `db:"title"`
	Price         float64 `db:"price"`
	StockQty      int     `db:"stock_qty"`
	Active        bool    `db:"active"`
	CreatedAt     string  `db:"created_at"`
}

// StudyMaterial backs the study-tips and success-guide pages.
// Kind is 'tip' or 'guide'.
type StudyMaterial struct {
	ID       string `db:"id"`
	Kind     string `db:"kind"`
	Title    string `db:"title"`
	TitleAr  string `db:"title_ar"`
	Body     string `db:"body"`
	Position int    `db:"position"`
}

// Schedule is a study-calendar entry. Type is one of
// exams|calendar|projects|review; Status is active|upcoming.
type Schedule struct {
	ID           string `db:"id"`
	Title        string `db:"title"`
	Description  string `db:"description"`
	Type         string `db:"type"`
	Date         string `db:"date"`
	Status       string `db:"status"`
	Downloadable bool   `db:"downloadable"`
	FileURL      string `db:"file_url"`
	CreatedAt    string `db:"created_at"`
}

type Inquiry struct {
	ID           string `db:"id"`
	CustomerName string `db:"customer_name"`
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	BookID       string `db:"book_id"`
	Message      string `db:"message"`
	CreatedAt    string `db:"created_at"`
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}
