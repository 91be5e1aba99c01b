package services_test

import (
	"net/url"
	"strings"
	"testing"

	"royalstudy/internal/repos"
	"royalstudy/internal/services"
)

func TestComposeMessageCarriesBookDetails(t *testing.T) {
	db := seededDB(t)
	svc := catalog(db)

	book, err := svc.GetBook("b-math12")
	if err != nil {
		t.Fatal(err)
	}
	msg := services.ComposeMessage(services.InquiryForm{CustomerName: "Huda", Note: "Is delivery available?"}, book)

	for _, want := range []string{
		"رياضيات التوجيهي",
		"عمر الخالدي",
		"12.50 JOD",
		"متوفر / In stock",
		"Is delivery available?",
		"Huda",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestComposeMessageGeneralInquiry(t *testing.T) {
	msg := services.ComposeMessage(services.InquiryForm{CustomerName: "Huda"}, services.BookView{})
	if !strings.Contains(msg, "Hello, I would like to ask about your available books.") {
		t.Fatalf("wrong general template:\n%s", msg)
	}
}

func TestSubmitBuildsBothDeepLinks(t *testing.T) {
	db := seededDB(t)
	svc := services.NewInquiryService(repos.NewInquiryRepo(db), catalog(db), "962790000000")

	links, err := svc.Submit(services.InquiryForm{CustomerName: "Huda", BookID: "b-math12"})
	if err != nil {
		t.Fatalf("persist should succeed on a healthy store: %v", err)
	}
	if !strings.HasPrefix(links.WebURI, "https://wa.me/962790000000?text=") {
		t.Fatalf("bad web uri: %s", links.WebURI)
	}
	if !strings.HasPrefix(links.NativeURI, "whatsapp://send?phone=962790000000&text=") {
		t.Fatalf("bad native uri: %s", links.NativeURI)
	}
	// The encoded text must round-trip back to the composed message.
	enc := strings.TrimPrefix(links.WebURI, "https://wa.me/962790000000?text=")
	dec, err := url.QueryUnescape(enc)
	if err != nil {
		t.Fatal(err)
	}
	if dec != links.Message {
		t.Fatal("web uri text does not decode to the message")
	}
}

func TestSubmitSurvivesPersistFailure(t *testing.T) {
	db := seededDB(t)
	if _, err := db.Exec(`DROP TABLE inquiries`); err != nil {
		t.Fatal(err)
	}
	svc := services.NewInquiryService(repos.NewInquiryRepo(db), catalog(db), "962790000000")

	links, persistErr := svc.Submit(services.InquiryForm{CustomerName: "Huda", BookID: "b-math12"})
	if persistErr == nil {
		t.Fatal("expected persist error with dropped table")
	}
	if !strings.Contains(links.WebURI, "wa.me") || links.Message == "" {
		t.Fatal("links must stay valid when persistence fails")
	}
	if !strings.Contains(links.Message, "رياضيات التوجيهي") {
		t.Fatal("message lost book details on persist failure")
	}
}
