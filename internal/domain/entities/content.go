package entities

// CompanyInfo is printed on contracts and used as mail sender identity.
type CompanyInfo struct {
	Name              string `json:"name" yaml:"name"`
	Owner             string `json:"owner" yaml:"owner"`
	Street            string `json:"street" yaml:"street"`
	ZipCity           string `json:"zip_city" yaml:"zip_city"`
	Email             string `json:"email" yaml:"email"`
	Phone             string `json:"phone" yaml:"phone"`
	TaxID             string `json:"tax_id" yaml:"tax_id"`
	IBAN              string `json:"iban" yaml:"iban"`
	DepositPercentage int    `json:"deposit_percentage" yaml:"deposit_percentage"`
}

type ContractClause struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

type ServiceEntry struct {
	Slug       string `json:"slug" yaml:"slug"`
	Title      string `json:"title" yaml:"title"`
	Summary    string `json:"summary" yaml:"summary"`
	VideoType  string `json:"video_type,omitempty" yaml:"video_type"`
	FromPrice  int    `json:"from_price,omitempty" yaml:"from_price"`
	HidesDrone bool   `json:"hides_drone,omitempty" yaml:"hides_drone"`
}

type FAQEntry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

type Testimonial struct {
	Author  string `json:"author" yaml:"author"`
	Company string `json:"company" yaml:"company"`
	Quote   string `json:"quote" yaml:"quote"`
}

type PortfolioItem struct {
	Title     string `json:"title" yaml:"title"`
	Client    string `json:"client" yaml:"client"`
	VideoType string `json:"video_type" yaml:"video_type"`
	VideoURL  string `json:"video_url" yaml:"video_url"`
}
