package services

import (
	"fmt"
	"net/url"

	"royalstudy/internal/domain"
	"royalstudy/internal/repos"

	"github.com/google/uuid"
)

// InquiryService turns a "contact us about this book" action into a
// pre-filled WhatsApp conversation. Persisting the inquiry row is
// best-effort: the conversation link is produced regardless.
type InquiryService struct {
	Inquiries *repos.InquiryRepo
	Catalog   *CatalogService
	Phone     string // store's WhatsApp number, digits only
}

func NewInquiryService(inq *repos.InquiryRepo, catalog *CatalogService, phone string) *InquiryService {
	return &InquiryService{Inquiries: inq, Catalog: catalog, Phone: phone}
}

type InquiryForm struct {
	CustomerName string
	Phone        string
	Email        string
	BookID       string
	Note         string
}

// InquiryLinks carries both deep-link forms: the native app URI is
// tried first on Android, falling back to the web URI after a fixed
// delay; everyone else opens the web URI directly.
type InquiryLinks struct {
	WebURI    string
	NativeURI string
	Message   string
}

// ComposeMessage builds the bilingual inquiry template. Book may be the
// zero value for a general inquiry.
func ComposeMessage(form InquiryForm, book BookView) string {
	if book.ID == "" {
		msg := "مرحباً، أود الاستفسار عن الكتب المتوفرة لديكم.\nHello, I would like to ask about your available books."
		if form.Note != "" {
			msg += "\n\n" + form.Note
		}
		if form.CustomerName != "" {
			msg += "\n\n" + form.CustomerName
		}
		return msg
	}

	stock := "متوفر / In stock"
	if book.Availability.Status == "OUT_OF_STOCK" {
		stock = "غير متوفر حالياً / Currently out of stock"
	}
	msg := fmt.Sprintf(
		"مرحباً، أود الاستفسار عن هذا الكتاب:\nHello, I would like to ask about this book:\n\n"+
			"الكتاب / Book: %s\n"+
			"المؤلف / Author: %s\n"+
			"التصنيف / Category: %s\n"+
			"السعر / Price: %.2f JOD\n"+
			"التوفر / Availability: %s",
		book.DisplayTitle, book.AuthorName, book.CategoryName, book.Price, stock)
	if form.Note != "" {
		msg += "\n\n" + form.Note
	}
	if form.CustomerName != "" {
		msg += "\n\n" + form.CustomerName
	}
	return msg
}

func (s *InquiryService) links(msg string) InquiryLinks {
	enc := url.QueryEscape(msg)
	return InquiryLinks{
		WebURI:    "https://wa.me/" + s.Phone + "?text=" + enc,
		NativeURI: "whatsapp://send?phone=" + s.Phone + "&text=" + enc,
		Message:   msg,
	}
}

// Submit composes the message, best-effort persists the inquiry and
// returns the deep links. A failed insert is reported through the
// second return so the caller can log it; the links are always valid.
func (s *InquiryService) Submit(form InquiryForm) (InquiryLinks, error) {
	var book BookView
	if form.BookID != "" {
		if b, err := s.Catalog.GetBook(form.BookID); err == nil {
			book = b
		}
	}
	msg := ComposeMessage(form, book)

	persistErr := s.Inquiries.Create(domain.Inquiry{
		ID:           uuid.NewString(),
		CustomerName: form.CustomerName,
		Phone:        form.Phone,
		Email:        form.Email,
		BookID:       form.BookID,
		Message:      msg,
	})

	return s.links(msg), persistErr
}
